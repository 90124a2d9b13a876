package dto

// LoginRequest entrada para login. Usuario es opcional: sin él se busca el usuario
// activo cuya contraseña coincida.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// LoginResponse token JWT y datos del usuario autenticado.
type LoginResponse struct {
	Token   string `json:"token"`
	Usuario string `json:"usuario"`
	Role    string `json:"role"`
}
