package response

import (
	"studiobooking/internal/usecase/commands"
)

type SendOTPResponse struct {
	Sent              bool `json:"sent"`
	RetryAfterSeconds int  `json:"retryAfterSeconds"`
}

func FromSendOTPResult(r *commands.SendOTPResult) *SendOTPResponse {
	return &SendOTPResponse{
		Sent:              true,
		RetryAfterSeconds: int(r.RetryAfter.Seconds()),
	}
}

type SessionResponse struct {
	Token      string `json:"token"`
	VerifiedBy string `json:"verifiedBy"`
}

func FromAuthResult(r *commands.AuthResult) *SessionResponse {
	return &SessionResponse{
		Token:      r.Token,
		VerifiedBy: string(r.VerifiedBy),
	}
}
