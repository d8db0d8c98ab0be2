package service

import (
	"strings"

	"github.com/vastra-store/internal/queue"
	"github.com/vastra-store/internal/repository"
)

// enqueueOrderStatusEmailTaskIfEligible enqueues a status email unless
// the order has no resolvable recipient. Returns skipped=true in that
// case.
func enqueueOrderStatusEmailTaskIfEligible(orderRepo repository.OrderRepository, queueClient *queue.Client, orderID uint, status string) (skipped bool, err error) {
	if queueClient == nil || !queueClient.Enabled() || orderID == 0 {
		return true, nil
	}

	if orderRepo != nil {
		receiverEmail, lookupErr := orderRepo.ResolveReceiverEmailByOrderID(orderID)
		if lookupErr == nil && strings.TrimSpace(receiverEmail) == "" {
			return true, nil
		}
	}

	if err := queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: orderID,
		Status:  strings.TrimSpace(status),
	}); err != nil {
		return false, err
	}
	return false, nil
}
