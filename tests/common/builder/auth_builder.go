//go:build unit || e2e

package builder

import (
	reqdto "studiobooking/internal/handler/dto/request"
)

type AuthBuilder struct {
	Phone       string
	Code        string
	Fingerprint string
	DeviceName  string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Phone:       "+15550001111",
		Code:        "123456",
		Fingerprint: "fp-abc123",
		DeviceName:  "Sam's phone",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildSendOTPDTO() reqdto.SendOTPRequest {
	return reqdto.SendOTPRequest{Phone: a.Phone}
}

func (a *AuthBuilder) BuildVerifyOTPDTO() reqdto.VerifyOTPRequest {
	return reqdto.VerifyOTPRequest{
		Phone:             a.Phone,
		Code:              a.Code,
		DeviceFingerprint: a.Fingerprint,
		DeviceName:        a.DeviceName,
	}
}

func (a *AuthBuilder) BuildVerifyDeviceDTO() reqdto.VerifyDeviceRequest {
	return reqdto.VerifyDeviceRequest{
		Phone:             a.Phone,
		DeviceFingerprint: a.Fingerprint,
	}
}
