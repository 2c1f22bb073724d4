// Package subscriptiondto - các cấu trúc output cho domain subscription.
package subscriptiondto

// ToggleSubscriptionResult trạng thái theo dõi sau khi toggle
type ToggleSubscriptionResult struct {
	Subscribed bool `json:"subscribed"`
}
