package model

import "time"

// Staff roles.  Managers can do everything staff can, plus reset and
// randomize the hotel.
const (
    RoleStaff   = "STAFF"
    RoleManager = "MANAGER"
)

// User is a front-desk account allowed to book rooms.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – normalized (lower-case) login.
//  PasswordHash – bcrypt hash of the password.
//  Role         – RoleStaff or RoleManager.
//  IsActive     – disabled accounts cannot log in.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type User struct {
    ID           uint64    // users.id
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Role         string    // users.role
    IsActive     bool      // users.is_active
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}
