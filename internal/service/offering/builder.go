package offering

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
	"github.com/m04kA/SMC-CourseBoxService/internal/integrations/commerce"
	"github.com/m04kA/SMC-CourseBoxService/internal/service/availability"
)

// Options параметры сборки снимка
type Options struct {
	DefaultCapacity int // вместимость, если у курса она не задана
	LowSeatsLimit   int // порог "осталось мало мест"
}

// Builder собирает OfferingSnapshot курса
// Все чтения, зависящие от времени и внешних систем, выполняются здесь
type Builder struct {
	catalog      ProductCatalog
	sales        SalesCalculator
	opts         Options
	timeProvider TimeProvider
	logger       Logger
}

// NewBuilder создает новый экземпляр сборщика
func NewBuilder(catalog ProductCatalog, sales SalesCalculator, opts Options, logger Logger) *Builder {
	if opts.DefaultCapacity <= 0 {
		opts.DefaultCapacity = domain.DefaultCapacity
	}
	if opts.LowSeatsLimit < 0 {
		opts.LowSeatsLimit = domain.DefaultLowSeatsLimit
	}
	return &Builder{
		catalog:      catalog,
		sales:        sales,
		opts:         opts,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Build собирает снимок курса на текущий момент
// Товар и журнал продаж читаются параллельно. Недоступность каталога не является ошибкой:
// курс считается не распроданным и без отсчёта до запуска.
func (b *Builder) Build(ctx context.Context, course *domain.Course) (*domain.OfferingSnapshot, error) {
	if course == nil {
		return nil, fmt.Errorf("%w: course is nil", ErrInvalidInput)
	}

	now := b.timeProvider.Now()
	productID := course.ProductID()

	var (
		product *domain.Product
		sales   *availability.Sales
	)

	var g errgroup.Group
	g.Go(func() error {
		product = b.fetchProduct(ctx, course.ID, productID)
		return nil
	})
	g.Go(func() error {
		sales = b.sales.LoadSales(ctx, productID)
		return nil
	})
	_ = g.Wait()
	if sales == nil {
		sales = &availability.Sales{ProductID: productID}
	}

	snapshot := &domain.OfferingSnapshot{
		CourseID:      course.ID,
		Title:         course.Title,
		ManualState:   course.ManualState,
		ProductID:     productID,
		CoursePrice:   course.CoursePrice(),
		EnrollPrice:   course.EnrollmentPrice(),
		PriceFormat:   domain.DefaultPriceFormat,
		IsOutOfStock:  product != nil && !product.InStock,
		ShowCountdown: product.IsLaunchingAfter(now),
		SeatsPending:  sales.Pending,
		LowSeatsLimit: b.opts.LowSeatsLimit,
		EvaluatedAt:   now,
	}
	if product != nil {
		snapshot.LaunchAt = product.LaunchAt
	}
	if course.PriceFormat != nil && strings.TrimSpace(*course.PriceFormat) != "" {
		snapshot.PriceFormat = *course.PriceFormat
	}
	if course.ButtonText != nil {
		snapshot.ButtonText = strings.TrimSpace(*course.ButtonText)
	}

	b.fillSeats(snapshot, course, sales)
	b.checkDataQuality(course)

	return snapshot, nil
}

func (b *Builder) fetchProduct(ctx context.Context, courseID, productID int64) *domain.Product {
	if productID <= 0 {
		return nil
	}

	product, err := b.catalog.GetProductWithGracefulDegradation(ctx, productID)
	if err != nil {
		if errors.Is(err, commerce.ErrProductNotFound) {
			b.logger.Warn("Build: course id=%d links missing product id=%d", courseID, productID)
			return nil
		}
		b.logger.Error("Build: no product info for course id=%d: %v", courseID, err)
		return nil
	}
	return product
}

// fillSeats считает места по датам
// Даты с одинаковой меткой делят общий пул: их вместимости складываются, продажи считаются один раз
func (b *Builder) fillSeats(snapshot *domain.OfferingSnapshot, course *domain.Course, sales *availability.Sales) {
	base := course.Capacity(b.opts.DefaultCapacity)
	schedule := course.EffectiveSchedule()

	if len(schedule) == 0 {
		snapshot.Slots = []domain.SlotAvailability{}
		snapshot.TotalCapacity = base
		snapshot.TotalSold = sales.Sold(nil)
		snapshot.TotalAvailable = availability.Available(base, snapshot.TotalSold)
		return
	}

	capacityByLabel := make(map[string]int, len(schedule))
	labelOrder := make([]string, 0, len(schedule))
	for _, slot := range schedule {
		key := domain.NormalizeLabel(slot.Label)
		if _, seen := capacityByLabel[key]; !seen {
			labelOrder = append(labelOrder, key)
		}
		capacityByLabel[key] += slot.EffectiveCapacity(base)
	}

	snapshot.Slots = make([]domain.SlotAvailability, 0, len(schedule))
	for _, slot := range schedule {
		capacity := capacityByLabel[domain.NormalizeLabel(slot.Label)]
		sold := sales.SoldForLabel(slot.Label)
		snapshot.Slots = append(snapshot.Slots, domain.SlotAvailability{
			Label:      slot.Label,
			Capacity:   capacity,
			Sold:       sold,
			Available:  availability.Available(capacity, sold),
			ButtonText: slot.CallToAction(),
		})
	}

	for _, key := range labelOrder {
		capacity := capacityByLabel[key]
		sold := sales.SoldForLabel(key)
		snapshot.TotalCapacity += capacity
		snapshot.TotalSold += sold
		snapshot.TotalAvailable += availability.Available(capacity, sold)
	}
}

func (b *Builder) checkDataQuality(course *domain.Course) {
	if !course.ManualState.IsKnown() {
		b.logger.Warn("Build: course id=%d has unknown box state %q", course.ID, course.RawState)
		return
	}
	if course.ManualState.IsEnrollOrDefault() && !course.HasSchedule() {
		b.logger.Warn("Build: course id=%d is in enroll state without dates, expected waitlist", course.ID)
	}
}
