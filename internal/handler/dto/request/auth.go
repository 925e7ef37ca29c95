package request

import (
	"studiobooking/internal/domain/booking"
)

type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

func (r *SendOTPRequest) ToDomain() (booking.Phone, error) {
	return booking.NewPhone(r.Phone)
}

type VerifyOTPRequest struct {
	Phone             string `json:"phone" binding:"required"`
	Code              string `json:"code" binding:"required,len=6,numeric"`
	DeviceFingerprint string `json:"device_fingerprint" binding:"required"`
	DeviceName        string `json:"device_name,omitempty"`
}

func (r *VerifyOTPRequest) ToDomain() (booking.Phone, error) {
	return booking.NewPhone(r.Phone)
}

type VerifyDeviceRequest struct {
	Phone             string `json:"phone" binding:"required"`
	DeviceFingerprint string `json:"device_fingerprint" binding:"required"`
}

func (r *VerifyDeviceRequest) ToDomain() (booking.Phone, error) {
	return booking.NewPhone(r.Phone)
}
