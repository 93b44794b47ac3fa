package handlers

// HandlerBundle groups the handlers wired in main and consumed by the routes
// package.
type HandlerBundle struct {
	Booking *BookingHandler
	Admin   *AdminHandler
}
