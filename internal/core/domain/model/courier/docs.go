// Package courier provides the Courier aggregate for courier account
// management: identity, mobile-app credentials, vehicle details, and
// activity tracking.
//
// Key business rules:
//   - Couriers must have a valid unique identifier, name, and well-formed email
//   - Passwords are stored only as bcrypt hashes
//   - Inactive couriers cannot log in or receive orders
package courier
