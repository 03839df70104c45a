package repo

// UserContextStore абстракция для хранения контекста пользователя (последний логин).
type UserContextStore interface {
	SaveLogin(login string) error
	LoadLogin() (string, error)
}

// AuthStore объединяет токен и контекст пользователя.
type AuthStore interface {
	TokenStore
	UserContextStore
}
