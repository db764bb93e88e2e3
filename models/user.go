package models

import (
	"errors"
	"placeserver/config"
	"placeserver/db"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("User already exists")

type User struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"type:varchar(255);index:uniq_email,unique;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
}

// UserRegister creates a new user with a bcrypt-hashed password.
// Returns ErrEmailTaken when the email is already registered, including the
// case where a concurrent registration wins the insert race.
func UserRegister(dbc *gorm.DB, email, plainTextPassword string) (User, error) {
	var existing User
	err := dbc.Select("id").Where("email = ?", email).Limit(1).Find(&existing).Error
	if err != nil {
		return User{}, err
	}
	if existing.ID != 0 {
		return User{}, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), config.BCRYPT_COST)
	if err != nil {
		return User{}, err
	}
	u := User{Email: email, Password: string(hash)}
	if err = dbc.Create(&u).Error; err != nil {
		if db.IsDuplicate(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return u, nil
}

// UserLogin verifies the credentials. ok is false for an unknown email or a
// wrong password; err is reserved for store failures.
func UserLogin(dbc *gorm.DB, email, plainTextPassword string) (u User, ok bool, err error) {
	err = dbc.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plainTextPassword)) != nil {
		return User{}, false, nil
	}
	return u, true, nil
}
