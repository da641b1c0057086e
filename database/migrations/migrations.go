// Package migrations contains every schema migration. Each file registers
// itself with the runner from init(); importing this package for side
// effects is enough to make the full set available:
//
//	import _ "github.com/shashiranjanraj/orderdesk/database/migrations"
package migrations
