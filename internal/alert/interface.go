package alert

import "context"

// UseCase reports dispatch incidents to the operations channel.
type UseCase interface {
	// ReportDispatchFailure is raised when a dispatch aborts on a store or index error.
	ReportDispatchFailure(ctx context.Context, input DispatchFailureInput) error
	// ReportDeliveryDegraded is raised when a dispatch completes with failed deliveries.
	ReportDeliveryDegraded(ctx context.Context, input DeliveryDegradedInput) error
}
