package services

import (
	"context"

	"github.com/shopeasy/storefront/internal/api"
)

// GatewaySession is the backend-created payment session the hosted widget
// is opened with.
type GatewaySession struct {
	Key            string  `json:"key"`
	Amount         int64   `json:"amount"`
	Currency       string  `json:"currency"`
	GatewayOrderID string  `json:"orderId"`
	Order          struct {
		OrderNumber string `json:"orderNumber"`
	} `json:"order"`
}

// VerifyRequest carries the widget's success callback payload back to the
// backend for signature verification.
type VerifyRequest struct {
	GatewayOrderID   string `json:"razorpay_order_id"`
	GatewayPaymentID string `json:"razorpay_payment_id"`
	GatewaySignature string `json:"razorpay_signature"`
	OrderID          string `json:"orderId"`
}

type PaymentStatus struct {
	Status string `json:"status"`
}

// PaymentService wraps /payments.
type PaymentService struct {
	Client *api.Client
}

func (s *PaymentService) CreateGatewayOrder(ctx context.Context, orderID string) (*GatewaySession, error) {
	body := map[string]string{"orderId": orderID}
	var session GatewaySession
	if err := s.Client.Post(ctx, "/payments/create-order", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *PaymentService) Verify(ctx context.Context, req VerifyRequest) error {
	return s.Client.Post(ctx, "/payments/verify-payment", req, nil)
}

func (s *PaymentService) Status(ctx context.Context, orderID string) (*PaymentStatus, error) {
	var status PaymentStatus
	if err := s.Client.Get(ctx, "/payments/status/"+orderID, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
