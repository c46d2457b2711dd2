// Package services defines the business logic for identity, pets,
// appointments, and the hospital directory. This file centralizes common
// service-level error values so that they can be consistently returned
// by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing messages or HTTP status codes is
// performed at the handler layer.
package services

import "errors"

// Identity errors.
var (
	// ErrDuplicatePhone indicates a registration attempt with a phone
	// number that already belongs to another user.
	ErrDuplicatePhone = errors.New("phone number already registered")

	// ErrDuplicateEmail indicates a registration attempt with an email
	// address that already belongs to another user.
	ErrDuplicateEmail = errors.New("email address already registered")

	// ErrInvalidCredentials is returned for any login failure. Unknown
	// phone and wrong password collapse into this single error so the
	// response does not reveal which field was wrong.
	ErrInvalidCredentials = errors.New("phone number or password is incorrect")

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserHasPets blocks user deletion while the user still owns pets.
	ErrUserHasPets = errors.New("user still owns pets")

	// ErrDeliveryFailed indicates the notification gateway could not
	// send the verification code.
	ErrDeliveryFailed = errors.New("verification code could not be delivered")
)

// Pet errors.
var (
	// ErrPetNotFound indicates the requested pet does not exist.
	ErrPetNotFound = errors.New("pet not found")

	// ErrOwnerNotFound indicates the owner referenced by a new pet does
	// not exist.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrPetHasAppointments blocks pet deletion while appointments
	// still reference it.
	ErrPetHasAppointments = errors.New("pet still has appointments")
)

// Directory and appointment errors.
var (
	// ErrCityNotFound indicates the requested city does not exist.
	ErrCityNotFound = errors.New("city not found")

	// ErrHospitalNotFound indicates the requested hospital does not exist.
	ErrHospitalNotFound = errors.New("hospital not found")

	// ErrDoctorNotFound indicates the requested doctor does not exist.
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrDoctorNotInHospital indicates a booking named a doctor that is
	// not employed by the stated hospital.
	ErrDoctorNotInHospital = errors.New("doctor does not belong to this hospital")

	// ErrAppointmentNotFound indicates the requested appointment does
	// not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")
)
