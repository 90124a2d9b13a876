package entity

import (
	"strings"
	"time"
)

// Customer cliente registrado.
type Customer struct {
	ID            int64     `db:"id"`
	FirstSurname  string    `db:"first_surname"`
	SecondSurname string    `db:"second_surname"`
	Name          string    `db:"name"`
	Phone         string    `db:"phone"`
	Email         string    `db:"email"`
	Address       string    `db:"address"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// FullName nombre seguido de apellidos.
func (c Customer) FullName() string {
	return strings.Join(strings.Fields(c.Name+" "+c.FirstSurname+" "+c.SecondSurname), " ")
}
