package models

type Member struct {
	UUID        string
	DisplayName string
	Username    string
}
