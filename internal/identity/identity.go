package identity

// Identidade verificada entregue pela camada de autenticação.

const (
	RoleClient   = "CLIENT"
	RoleProvider = "PROVIDER"
	RoleAdmin    = "ADMIN"
)

type Caller struct {
	ID   uint
	Role string
}

// Staff indica permissão para reservas assistidas e mudanças de status.
func (c Caller) Staff() bool {
	return c.Role == RoleProvider || c.Role == RoleAdmin
}
