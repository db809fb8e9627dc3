package mapper

import (
	"time"

	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/dto"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/entity"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/service"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/types"
)

func PlanToProto(item entity.Plan) *types.Plan {
	return &types.Plan{
		Code:         item.Code,
		Name:         item.Name,
		PriceCents:   item.PriceCents,
		Currency:     item.Currency,
		DurationDays: int32(item.DurationDays),
	}
}

func PlansToProto(items []entity.Plan) []*types.Plan {
	result := make([]*types.Plan, 0, len(items))
	for _, item := range items {
		result = append(result, PlanToProto(item))
	}
	return result
}

func SubscriptionRecordToProto(item *entity.SubscriptionRecord) *types.SubscriptionRecord {
	if item == nil {
		return nil
	}

	return &types.SubscriptionRecord{
		Id:            item.ID,
		InvestorId:    item.InvestorID,
		PlanType:      item.PlanType,
		StartDate:     formatTime(item.StartDate),
		ExpiryDate:    formatTime(item.ExpiryDate),
		Status:        item.Status,
		PriceCents:    item.PriceCents,
		Currency:      item.Currency,
		TransactionId: item.TransactionID,
		CreatedAt:     formatTime(item.CreatedAt),
		UpdatedAt:     formatTime(item.UpdatedAt),
	}
}

func SubscriptionRecordsToProto(items []*entity.SubscriptionRecord) []*types.SubscriptionRecord {
	result := make([]*types.SubscriptionRecord, 0, len(items))
	for _, item := range items {
		result = append(result, SubscriptionRecordToProto(item))
	}
	return result
}

func SubscriptionStatusToProto(item *service.SubscriptionStatus) *types.SubscriptionStatus {
	if item == nil {
		return nil
	}

	result := &types.SubscriptionStatus{HasSubscription: item.HasSubscription}
	if !item.HasSubscription {
		return result
	}
	result.ExpiryDate = formatTimePtr(item.ExpiryDate)
	result.DaysRemaining = item.DaysRemaining
	result.PlanType = item.PlanType
	return result
}

func PlansToDTO(items []entity.Plan) []dto.PlanResponse {
	result := make([]dto.PlanResponse, 0, len(items))
	for _, item := range items {
		result = append(result, dto.PlanResponse{
			Code:         item.Code,
			Name:         item.Name,
			PriceCents:   item.PriceCents,
			Currency:     item.Currency,
			DurationDays: item.DurationDays,
		})
	}
	return result
}

func SubscriptionRecordToDTO(item *entity.SubscriptionRecord) dto.SubscriptionRecordResponse {
	if item == nil {
		return dto.SubscriptionRecordResponse{}
	}

	return dto.SubscriptionRecordResponse{
		ID:            item.ID,
		InvestorID:    item.InvestorID,
		PlanType:      item.PlanType,
		StartDate:     formatTime(item.StartDate),
		ExpiryDate:    formatTime(item.ExpiryDate),
		Status:        item.Status,
		PriceCents:    item.PriceCents,
		Currency:      item.Currency,
		TransactionID: item.TransactionID,
		CreatedAt:     formatTime(item.CreatedAt),
		UpdatedAt:     formatTime(item.UpdatedAt),
	}
}

func SubscriptionRecordsToDTO(items []*entity.SubscriptionRecord) []dto.SubscriptionRecordResponse {
	result := make([]dto.SubscriptionRecordResponse, 0, len(items))
	for _, item := range items {
		result = append(result, SubscriptionRecordToDTO(item))
	}
	return result
}

func SubscriptionStatusToDTO(item *service.SubscriptionStatus) dto.SubscriptionStatusResponse {
	if item == nil || !item.HasSubscription {
		return dto.SubscriptionStatusResponse{}
	}

	expiry := formatTimePtr(item.ExpiryDate)
	days := item.DaysRemaining
	plan := item.PlanType
	return dto.SubscriptionStatusResponse{
		HasSubscription: true,
		ExpiryDate:      &expiry,
		DaysRemaining:   &days,
		PlanType:        &plan,
	}
}

func formatTime(v time.Time) string {
	return v.UTC().Format(time.RFC3339)
}

func formatTimePtr(v *time.Time) string {
	if v == nil {
		return ""
	}
	return formatTime(*v)
}
