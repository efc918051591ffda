package auth

type RegisterRequest struct {
	Name     string `json:"name"`     // Отображаемое имя
	Login    string `json:"login"`    // Логин
	Password string `json:"password"` // Пароль
}

type LoginRequest struct {
	Login    string `json:"login"`    // Логин
	Password string `json:"password"` // Пароль
}
