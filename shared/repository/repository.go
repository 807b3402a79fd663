// Package repository provides the generic table every domain repository embeds.
// Rows live in memory keyed by their primary column; every mutation writes a
// full snapshot of the table before it returns, and a failed snapshot write
// restores the previous rows so callers never observe an unsaved change.
package repository

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"

	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/logger"
	"frontdesk/shared/snapshot"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

var (
	errRequiredFilter = errors.New("required filter")
	ErrDuplicateKey   = errors.New("duplicate primary key")
	ErrUnknownColumn  = errors.New("unknown column")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type table[T any] struct {
	rows  map[string]T
	order []string
}

func (t table[T]) clone() table[T] {
	return table[T]{rows: maps.Clone(t.rows), order: slices.Clone(t.order)}
}

type Repository[T any] struct {
	mu            *sync.RWMutex
	data          *table[T]
	store         snapshot.Store
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       map[string][]int
}

// NewRepository builds the table and restores it from the snapshot store.
// A snapshot that exists but cannot be read or decoded stops the process.
func NewRepository[T any](entitasName, tableName, primaryColumn string, store snapshot.Store, otl otel.Otel) Repository[T] {
	var zero T

	columns := getColumns(reflect.TypeOf(zero), nil)
	if _, ok := columns[primaryColumn]; !ok {
		log.Fatal().Str("entity", entitasName).Str("column", primaryColumn).Msg("Primary column is not mapped")
	}

	repo := Repository[T]{
		mu:            &sync.RWMutex{},
		data:          &table[T]{rows: map[string]T{}},
		store:         store,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
	}

	if err := repo.restore(context.Background()); err != nil {
		log.Fatal().Err(err).Str("entity", entitasName).Msg("Failed to restore table from snapshot")
	}

	return repo
}

func (repo *Repository[T]) restore(ctx context.Context) error {
	payload, err := repo.store.Load(ctx, repo.table)
	if errors.Is(err, snapshot.ErrNotFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to load snapshot (%s): %w", repo.entitas, err)
	}

	var models []T
	if err = json.Unmarshal(payload, &models); err != nil {
		return fmt.Errorf("failed to decode snapshot (%s): %w", repo.entitas, err)
	}

	for _, model := range models {
		id := repo.primaryKey(model)
		if _, exists := repo.data.rows[id]; !exists {
			repo.data.order = append(repo.data.order, id)
		}

		repo.data.rows[id] = model
	}

	log.Info().Str("entity", repo.entitas).Int("rows", len(models)).Msg("Restored table from snapshot")

	return nil
}

// persist must be called with the write lock held.
func (repo *Repository[T]) persist(ctx context.Context) error {
	models := make([]T, 0, len(repo.data.order))
	for _, id := range repo.data.order {
		models = append(models, repo.data.rows[id])
	}

	payload, err := json.Marshal(models)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot (%s): %w", repo.entitas, err)
	}

	if err = repo.store.Save(ctx, repo.table, payload); err != nil {
		return fmt.Errorf("failed to save snapshot (%s): %w", repo.entitas, err)
	}

	return nil
}

// mutate applies fn to a copy of the table and commits it only after the
// snapshot was written.
func (repo *Repository[T]) mutate(ctx context.Context, operation string, fn func(data *table[T]) (bool, error)) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, operation))
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	previous := *repo.data
	next := repo.data.clone()

	changed, err := fn(&next)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	if !changed {
		return nil
	}

	*repo.data = next

	if err = repo.persist(ctx); err != nil {
		*repo.data = previous

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return err
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.InsertBulk(ctx, []T{model})
}

func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	return repo.mutate(ctx, "Insert", func(data *table[T]) (bool, error) {
		for _, model := range models {
			id := repo.primaryKey(model)
			if _, exists := data.rows[id]; exists {
				return false, fmt.Errorf("failed to insert data (%s) %s: %w", repo.entitas, id, ErrDuplicateKey)
			}

			data.rows[id] = model
			data.order = append(data.order, id)
		}

		return len(models) > 0, nil
	})
}

// Save inserts model or replaces the row with the same primary key.
func (repo *Repository[T]) Save(ctx context.Context, model T) error {
	return repo.mutate(ctx, "Save", func(data *table[T]) (bool, error) {
		id := repo.primaryKey(model)
		if _, exists := data.rows[id]; !exists {
			data.order = append(data.order, id)
		}

		data.rows[id] = model

		return true, nil
	})
}

// Get returns the first row matching filter in insertion order, or the zero
// value when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, id := range repo.data.order {
		model := repo.data.rows[id]
		if filter.Match(repo.fields(model)) {
			return model, nil
		}
	}

	var zero T

	return zero, nil
}

// GetByID returns the row stored under id and whether it exists.
func (repo *Repository[T]) GetByID(ctx context.Context, id string) (T, bool) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByID", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	model, ok := repo.data.rows[id]

	return model, ok
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if params.SortBy != "" {
		if _, ok := repo.columns[params.SortBy]; !ok {
			return nil, fmt.Errorf("failed to sort data (%s) by %s: %w", repo.entitas, params.SortBy, ErrUnknownColumn)
		}
	}

	repo.mu.RLock()

	models := make([]T, 0, len(repo.data.order))

	for _, id := range repo.data.order {
		model := repo.data.rows[id]
		if filter.Match(repo.fields(model)) {
			models = append(models, model)
		}
	}

	repo.mu.RUnlock()

	if params.SortBy != "" {
		descending := strings.EqualFold(params.SortDir, dto.SortDirDesc)

		slices.SortStableFunc(models, func(a, b T) int {
			left, _ := repo.fields(a)(params.SortBy)
			right, _ := repo.fields(b)(params.SortBy)

			cmp, _ := dto.Compare(left, right)
			if descending {
				return -cmp
			}

			return cmp
		})
	}

	return paginate(models, params.Page, params.Limit), nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	if len(filter.Filters) == 0 {
		return false, errRequiredFilter
	}

	count, err := repo.Count(ctx, filter)

	return count > 0, err
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	count := 0

	for _, model := range repo.data.rows {
		if filter.Match(repo.fields(model)) {
			count++
		}
	}

	return count, nil
}

// Update sets the given columns on every row matching filter.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	if len(filter.Filters) == 0 {
		return errRequiredFilter
	}

	if _, ok := mod[repo.primaryColumn]; ok {
		return fmt.Errorf("failed to update data (%s): primary column %s is immutable", repo.entitas, repo.primaryColumn)
	}

	return repo.mutate(ctx, "Update", func(data *table[T]) (bool, error) {
		changed := false

		for _, id := range data.order {
			model := data.rows[id]
			if !filter.Match(repo.fields(model)) {
				continue
			}

			if err := repo.assign(&model, mod); err != nil {
				return false, err
			}

			data.rows[id] = model
			changed = true
		}

		return changed, nil
	})
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	if len(filter.Filters) == 0 {
		return errRequiredFilter
	}

	return repo.mutate(ctx, "Delete", func(data *table[T]) (bool, error) {
		kept := data.order[:0]
		changed := false

		for _, id := range data.order {
			if filter.Match(repo.fields(data.rows[id])) {
				delete(data.rows, id)

				changed = true

				continue
			}

			kept = append(kept, id)
		}

		data.order = kept

		return changed, nil
	})
}

func (repo *Repository[T]) primaryKey(model T) string {
	value, _ := repo.fields(model)(repo.primaryColumn)

	return fmt.Sprint(value)
}

func (repo *Repository[T]) fields(model T) dto.Fields {
	value := reflect.ValueOf(model)

	return func(name string) (any, bool) {
		index, ok := repo.columns[name]
		if !ok {
			return nil, false
		}

		return value.FieldByIndex(index).Interface(), true
	}
}

func (repo *Repository[T]) assign(model *T, mod map[string]any) error {
	value := reflect.ValueOf(model).Elem()

	for column, newValue := range mod {
		index, ok := repo.columns[column]
		if !ok {
			return fmt.Errorf("failed to update data (%s) column %s: %w", repo.entitas, column, ErrUnknownColumn)
		}

		field := value.FieldByIndex(index)

		if newValue == nil {
			field.SetZero()

			continue
		}

		source := reflect.ValueOf(newValue)

		switch {
		case source.Type().AssignableTo(field.Type()):
			field.Set(source)
		case field.Kind() == reflect.Pointer && source.Type().AssignableTo(field.Type().Elem()):
			ptr := reflect.New(field.Type().Elem())
			ptr.Elem().Set(source)
			field.Set(ptr)
		case source.Type().ConvertibleTo(field.Type()):
			field.Set(source.Convert(field.Type()))
		default:
			return fmt.Errorf("failed to update data (%s): cannot assign %T to column %s", repo.entitas, newValue, column)
		}
	}

	return nil
}

func paginate[T any](models []T, page, limit int) []T {
	if limit <= 0 {
		return models
	}

	offset := 0
	if page > 0 {
		offset = (page - 1) * limit
	}

	if offset >= len(models) {
		return []T{}
	}

	return models[offset:min(offset+limit, len(models))]
}

func getColumns(reflectType reflect.Type, parent []int) map[string][]int {
	columns := map[string][]int{}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		index := append(slices.Clone(parent), i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			maps.Copy(columns, getColumns(field.Type, index))

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" || !field.IsExported() {
			continue
		}

		columns[dbTag] = index
	}

	return columns
}
