package domain

import "errors"

var (
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrUserNotFound     = errors.New("user not found")
)

var (
	ErrInvalidStayRange  = errors.New("check-out must be after check-in")
	ErrNoRoomsAvailable  = errors.New("no rooms available for these dates")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrInvalidTransition = errors.New("booking status does not allow this transition")
)

var (
	ErrInvalidAmount    = errors.New("booking price must be greater than zero")
	ErrInvalidSignature = errors.New("webhook signature verification failed")
	ErrMalformedPayload = errors.New("malformed webhook payload")
)

var (
	ErrReviewNotAllowed = errors.New("only confirmed bookings can be reviewed")
	ErrAlreadyReviewed  = errors.New("booking already has a review")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)
