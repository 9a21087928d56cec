package entity

type AdminName string

func (n AdminName) Valid() bool {
	return len(n) > 0
}

func (n AdminName) String() string {
	return string(n)
}

type AdminUser struct {
	Username     AdminName
	PasswordHash string
}

type AdminCtxKey struct{}

// AdminCtx carries the authenticated admin identity through the request
// context together with the HTTP status the token check resolved to.
type AdminCtx struct {
	Username   AdminName
	StatusCode int
}

func CreateAdminCtx(username AdminName, code int) AdminCtx {
	return AdminCtx{
		Username:   username,
		StatusCode: code,
	}
}
