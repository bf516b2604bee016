package model

type AuthContext struct {
	Claims map[string]any `json:"claims"`
}

type AuthQueryInput struct {
	Method string            `json:"method"`
	Path   string            `json:"path"`
	Header map[string]string `json:"header"`
	Auth   AuthContext       `json:"auth"`
}

type AuthQueryOutput struct {
	Allow bool `json:"allow"`
}
