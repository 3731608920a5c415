package repo

// UserContextStore хранит идентификатор последнего успешного входа.
type UserContextStore interface {
	SaveLogin(identifier string) error
	LoadLogin() (string, error)
}
