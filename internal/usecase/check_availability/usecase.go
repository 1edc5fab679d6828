package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	"github.com/rentovia/SDC-RentalService/pkg/ptr"
	"github.com/rentovia/SDC-RentalService/pkg/types"
)

// UseCase use case проверки доступности автопарка
// Помимо списка автомобилей фиксирует данные клиента и расписание в черновике
// сессии и fire-and-forget записывает заявку с почтовым уведомлением
type UseCase struct {
	carRepo      CarRepository
	enquiryRepo  EnquiryRepository
	draftStore   DraftStore
	mailer       Mailer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	carRepo CarRepository,
	enquiryRepo EnquiryRepository,
	draftStore DraftStore,
	mailer Mailer,
	logger Logger,
) *UseCase {
	return &UseCase{
		carRepo:      carRepo,
		enquiryRepo:  enquiryRepo,
		draftStore:   draftStore,
		mailer:       mailer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: session=%s, pickup=%s %s, drop=%s %s, transmission=%s",
		req.SessionID, req.PickupDate, req.PickupTime, req.DropDate, req.DropTime, req.Transmission)

	// 1. Нормализуем телефон и валидируем входные данные
	req.CustomerPhone = domain.NormalizePhone(req.CustomerPhone)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Считаем оплачиваемую длительность
	period, err := domain.ComputeRentalPeriod(req.PickupDate, req.PickupTime, req.DropDate, req.DropTime)
	if err != nil {
		if errors.Is(err, domain.ErrMinimumDuration) {
			uc.logger.Warn("CheckAvailability: duration below minimum for session=%s", req.SessionID)
			return nil, ErrMinimumDuration
		}
		uc.logger.Warn("CheckAvailability: invalid schedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if period == nil {
		// Недостижимо после validateRequest, оставлено как защитная проверка
		return nil, ErrIncompleteSchedule
	}

	// 3. Получаем автопарк (упорядочен по возрастанию базовой цены)
	cars, err := uc.carRepo.ListOrderedByPrice(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list cars: %v", err)
		return nil, fmt.Errorf("%w: failed to list cars: %v", ErrInternal, err)
	}

	// 4. Фильтруем по коробке передач и считаем стоимость за период
	options := buildCarOptions(cars, period, req.Transmission)

	uc.logger.Info("CheckAvailability: session=%s, %d/%d cars match, period=%dd %dh",
		req.SessionID, len(options), len(cars), period.FullDays, period.ExtraHours)

	// 5. Фиксируем данные клиента, расписание и длительность в черновике
	uc.draftStore.Update(req.SessionID, domain.DraftPatch{
		CustomerName:   ptr.Ptr(req.CustomerName),
		CustomerPhone:  ptr.Ptr(req.CustomerPhone),
		PickupDate:     ptr.Ptr(req.PickupDate),
		PickupTime:     ptr.Ptr(req.PickupTime),
		DropDate:       ptr.Ptr(req.DropDate),
		DropTime:       ptr.Ptr(req.DropTime),
		PickupLocation: ptr.Ptr(req.PickupLocation),
		TotalDays:      ptr.Ptr(period.FullDays),
		ExtraHours:     ptr.Ptr(period.ExtraHours),
	})

	// 6. Заявка и почтовое уведомление - fire-and-forget:
	// их отказ никогда не блокирует переход к следующему шагу
	go uc.submitEnquiry(context.WithoutCancel(ctx), req, period)

	return &Response{
		TotalHours: period.TotalHours,
		FullDays:   period.FullDays,
		ExtraHours: period.ExtraHours,
		Cars:       options,
	}, nil
}

// submitEnquiry записывает заявку и отправляет уведомление
// Все ошибки только логируются
func (uc *UseCase) submitEnquiry(ctx context.Context, req *Request, period *domain.RentalPeriod) {
	now := uc.timeProvider.Now()

	// Rate limit: не больше N заявок с одного телефона за последний час
	count, err := uc.enquiryRepo.CountByPhoneSince(ctx, req.CustomerPhone, now.Add(-time.Hour))
	if err != nil {
		uc.logger.Error("CheckAvailability: enquiry rate limit check failed for phone=%s: %v", req.CustomerPhone, err)
		return
	}
	if count >= domain.MaxEnquiriesPerPhonePerHour {
		uc.logger.Warn("CheckAvailability: enquiry rate limit hit for phone=%s (%d in trailing hour)",
			req.CustomerPhone, count)
		return
	}

	pickupAt, err := types.CombineDateTime(req.PickupDate, req.PickupTime)
	if err != nil {
		uc.logger.Error("CheckAvailability: enquiry pickup instant: %v", err)
		return
	}
	dropAt, err := types.CombineDateTime(req.DropDate, req.DropTime)
	if err != nil {
		uc.logger.Error("CheckAvailability: enquiry drop instant: %v", err)
		return
	}

	var location *string
	if req.PickupLocation != "" {
		location = ptr.Ptr(req.PickupLocation)
	}

	enq := &domain.Enquiry{
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		PickupAt:       pickupAt,
		DropAt:         dropAt,
		PickupLocation: location,
		TotalDays:      period.FullDays,
		ExtraHours:     period.ExtraHours,
		Transmission:   req.Transmission,
		Status:         domain.EnquiryStatusNew,
	}

	created, err := uc.enquiryRepo.Create(ctx, enq)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to record enquiry for phone=%s: %v", req.CustomerPhone, err)
		return
	}
	uc.logger.Info("CheckAvailability: enquiry id=%d recorded for phone=%s", created.ID, req.CustomerPhone)

	if err := uc.mailer.SendEnquiryNotification(ctx, created); err != nil {
		uc.logger.Error("CheckAvailability: enquiry notification failed for id=%d: %v", created.ID, err)
	}
}
