package models

type User struct {
	ID       string `bson:"_id" json:"userId"`
	UserName string `bson:"user_name" json:"userName"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"`
	IsAdmin  bool   `bson:"is_admin" json:"isAdmin"`
}
