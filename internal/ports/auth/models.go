package auth

// Claims es la identidad extraída del token (o del header de dev).
type Claims struct {
	UserID   string
	Username string
}
