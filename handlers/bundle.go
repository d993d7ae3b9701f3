// File: medibook/handlers/bundle.go
package handlers

import (
	userRepoPkg "medibook/database/repository/user"

	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups the endpoint handlers and what the route middleware needs.
type HandlerBundle struct {
	UserRepo  userRepoPkg.UserRepository
	AuthCache *redis.Client // nil disables account status caching

	Slots   *SlotHandler
	Doctors *DoctorHandler
	Admin   *AdminHandler
}
