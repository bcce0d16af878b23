// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

import "time"

// UserInfo is the identity subset returned with a token. It never carries
// password material or internal IDs.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResp is the response body for successful register and login calls.
type AuthResp struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// AdminUser is one row of the admin user listing.
type AdminUser struct {
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	RegisteredAt time.Time  `json:"registeredAt"`
	LastLogin    *time.Time `json:"lastLogin"`
}

// UserListResp wraps the admin user listing.
type UserListResp struct {
	Users []AdminUser `json:"users"`
}
