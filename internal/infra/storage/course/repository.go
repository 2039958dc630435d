package course

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourseBoxService/internal/domain"
	"github.com/m04kA/SMC-CourseBoxService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourseBoxService/pkg/psqlbuilder"
)

var courseColumns = []string{
	"id",
	"group_id",
	"title",
	"box_state",
	"linked_product_id",
	"enroll_product_link",
	"base_price",
	"enroll_price",
	"base_capacity",
	"button_text",
	"price_format",
	"created_at",
	"updated_at",
}

// Repository репозиторий курсов и их расписаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория курсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает курс вместе с расписанием
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает курс и блокирует его строку до конца транзакции
// Должен вызываться внутри транзакции (txmanager)
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Course, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	course, err := scanCourse(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan course: %v", ErrScanRow, err)
	}

	if err := r.attachSchedules(ctx, []*domain.Course{course}); err != nil {
		return nil, err
	}

	return course, nil
}

// ListByGroup получает курсы группы в порядке отображения
// Пустая группа возвращает пустой список без ошибки
func (r *Repository) ListByGroup(ctx context.Context, groupID int64) ([]*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"group_id": groupID}).
		OrderBy("group_position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGroup - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGroup - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByGroup - scan row: %v", ErrScanRow, err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByGroup - rows error: %v", ErrScanRow, err)
	}

	if len(courses) == 0 {
		return courses, nil
	}

	if err := r.attachSchedules(ctx, courses); err != nil {
		return nil, err
	}

	return courses, nil
}

// UpdateState сохраняет ручное состояние бокса
func (r *Repository) UpdateState(ctx context.Context, id int64, state domain.ManualState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courses").
		Set("box_state", string(state)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateState - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// ReplaceSchedule заменяет расписание курса целиком
// Старый формат расписания не трогается: при непустом новом расписании он не используется
func (r *Repository) ReplaceSchedule(ctx context.Context, courseID int64, slots []domain.DateSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("course_dates").
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - execute delete: %v", ErrExecQuery, err)
	}

	if len(slots) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("course_dates").
		Columns("course_id", "position", "date_label", "stock", "button_text")
	for i, slot := range slots {
		insert = insert.Values(courseID, i, slot.Label, slot.Capacity, slot.ButtonText)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// attachSchedules загружает расписания (новое и старое) для набора курсов двумя запросами
func (r *Repository) attachSchedules(ctx context.Context, courses []*domain.Course) error {
	byID := make(map[int64]*domain.Course, len(courses))
	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}

	if err := r.loadDates(ctx, ids, byID); err != nil {
		return err
	}
	return r.loadLegacyDates(ctx, ids, byID)
}

func (r *Repository) loadDates(ctx context.Context, ids []int64, byID map[int64]*domain.Course) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("course_id", "date_label", "stock", "button_text").
		From("course_dates").
		Where(squirrel.Eq{"course_id": ids}).
		OrderBy("course_id ASC", "position ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			courseID   int64
			slot       domain.DateSlot
			stock      sql.NullInt64
			buttonText sql.NullString
		)
		if err := rows.Scan(&courseID, &slot.Label, &stock, &buttonText); err != nil {
			return fmt.Errorf("%w: loadDates - scan row: %v", ErrScanRow, err)
		}
		if stock.Valid {
			capacity := int(stock.Int64)
			slot.Capacity = &capacity
		}
		if buttonText.Valid {
			slot.ButtonText = &buttonText.String
		}
		if c, ok := byID[courseID]; ok {
			c.Schedule = append(c.Schedule, slot)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadDates - rows error: %v", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) loadLegacyDates(ctx context.Context, ids []int64, byID map[int64]*domain.Course) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("course_id", "date_text", "webinar_stock").
		From("course_legacy_dates").
		Where(squirrel.Eq{"course_id": ids}).
		OrderBy("course_id ASC", "position ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadLegacyDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadLegacyDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			courseID int64
			label    string
			stock    sql.NullString
		)
		if err := rows.Scan(&courseID, &label, &stock); err != nil {
			return fmt.Errorf("%w: loadLegacyDates - scan row: %v", ErrScanRow, err)
		}
		if c, ok := byID[courseID]; ok {
			c.LegacySchedule = append(c.LegacySchedule, domain.LegacyDateSlot{Label: label, Stock: stock.String})
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadLegacyDates - rows error: %v", ErrScanRow, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCourse(row rowScanner) (*domain.Course, error) {
	var (
		course            domain.Course
		groupID           sql.NullInt64
		linkedProductID   sql.NullInt64
		enrollProductLink sql.NullString
		basePrice         decimal.NullDecimal
		enrollPrice       decimal.NullDecimal
		baseCapacity      sql.NullInt64
		buttonText        sql.NullString
		priceFormat       sql.NullString
		createdAt         sql.NullTime
		updatedAt         sql.NullTime
	)

	err := row.Scan(
		&course.ID,
		&groupID,
		&course.Title,
		&course.RawState,
		&linkedProductID,
		&enrollProductLink,
		&basePrice,
		&enrollPrice,
		&baseCapacity,
		&buttonText,
		&priceFormat,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	course.ManualState = domain.ParseManualState(course.RawState)
	if groupID.Valid {
		course.GroupID = &groupID.Int64
	}
	if linkedProductID.Valid {
		course.LinkedProductID = &linkedProductID.Int64
	}
	if enrollProductLink.Valid {
		course.EnrollProductLink = &enrollProductLink.String
	}
	if basePrice.Valid {
		course.BasePrice = &basePrice.Decimal
	}
	if enrollPrice.Valid {
		course.EnrollPrice = &enrollPrice.Decimal
	}
	if baseCapacity.Valid {
		capacity := int(baseCapacity.Int64)
		course.BaseCapacity = &capacity
	}
	if buttonText.Valid {
		course.ButtonText = &buttonText.String
	}
	if priceFormat.Valid {
		course.PriceFormat = &priceFormat.String
	}
	course.CreatedAt = createdAt.Time
	course.UpdatedAt = updatedAt.Time

	return &course, nil
}
