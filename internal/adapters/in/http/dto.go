package http

import (
	"time"

	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/core/domain/model/product"
)

// ErrorResponse is the uniform error envelope. Fields is populated only for
// order-intake validation failures, keyed by the offending input field.
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// PlaceOrderRequest is the order-intake payload. Quantities are kilograms;
// the shop sells in 0.5 kg steps.
type PlaceOrderRequest struct {
	CustomerName    string            `json:"customerName"`
	CustomerPhone   string            `json:"customerPhone"`
	AlternatePhone  string            `json:"alternatePhone"`
	CustomerAddress string            `json:"customerAddress"`
	Landmark        string            `json:"landmark"`
	PaymentMethod   string            `json:"paymentMethod"`
	Items           []CartLineRequest `json:"items"`
}

// CartLineRequest is one cart entry of the intake payload.
type CartLineRequest struct {
	ProductID int     `json:"productId"`
	Quantity  float64 `json:"quantity"`
}

// ChangeStatusRequest carries the target stage for a status update.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is one snapshotted line of an order.
type OrderItemResponse struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// OrderResponse is the wire shape of an order.
type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerName    string              `json:"customerName"`
	CustomerPhone   string              `json:"customerPhone"`
	AlternatePhone  string              `json:"alternatePhone,omitempty"`
	CustomerAddress string              `json:"customerAddress"`
	Landmark        string              `json:"landmark,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	TotalAmount     float64             `json:"totalAmount"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
	PaymentMethod   string              `json:"paymentMethod"`
}

// ProgressStepResponse is one stage of the tracking view: the stage name and
// whether it is completed, active or still pending.
type ProgressStepResponse struct {
	Status string `json:"status"`
	State  string `json:"state"`
}

// OrderDetailResponse is the tracking view: the order plus its per-stage
// delivery progress.
type OrderDetailResponse struct {
	OrderResponse
	Progress []ProgressStepResponse `json:"progress"`
}

// StatusSummaryResponse carries the dashboard counters. Counts always holds
// every stage, zero counts included.
type StatusSummaryResponse struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// ProductRequest is the catalog create/update payload.
type ProductRequest struct {
	Name       string  `json:"name"`
	PricePerKg float64 `json:"pricePerKg"`
}

// ProductResponse is the wire shape of a catalog product.
type ProductResponse struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	PricePerKg float64 `json:"pricePerKg"`
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity().InexactFloat64(),
			UnitPrice: item.UnitPrice().InexactFloat64(),
		})
	}

	customer := aggregate.Customer()
	return OrderResponse{
		ID:              aggregate.ID().String(),
		CustomerName:    customer.Name(),
		CustomerPhone:   customer.Phone(),
		AlternatePhone:  customer.AlternatePhone(),
		CustomerAddress: customer.Address(),
		Landmark:        customer.Landmark(),
		Items:           items,
		TotalAmount:     aggregate.TotalAmount().InexactFloat64(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		PaymentMethod:   aggregate.PaymentMethod().String(),
	}
}

func toOrderDetailResponse(aggregate *order.Order, steps []order.ProgressStep) OrderDetailResponse {
	progress := make([]ProgressStepResponse, 0, len(steps))
	for _, step := range steps {
		progress = append(progress, ProgressStepResponse{
			Status: step.Status.String(),
			State:  step.State.String(),
		})
	}
	return OrderDetailResponse{
		OrderResponse: toOrderResponse(aggregate),
		Progress:      progress,
	}
}

func toProductResponse(aggregate *product.Product) ProductResponse {
	return ProductResponse{
		ID:         aggregate.ID(),
		Name:       aggregate.Name(),
		PricePerKg: aggregate.PricePerKg().InexactFloat64(),
	}
}
