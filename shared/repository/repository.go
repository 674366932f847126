package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotelier/infras/jsonfile"
	"hotelier/infras/otel"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/logger"
	"io"
	"maps"
	"slices"
)

var (
	// ErrCorruptDocument marks a document that exists but cannot be decoded into records.
	ErrCorruptDocument = errors.New("corrupt record document")
)

// Entity is a record addressed by an integer id. The id is stored twice in the
// document: as the object key and inside the record itself.
type Entity[T any] interface {
	Identifier() int
	WithID(id int) T
}

// Validator is implemented by entities that carry their own invariants.
// A loaded record that fails Validate makes the whole document corrupt.
type Validator interface {
	Validate() error
}

// Repository is the record store of one entity type, backed by a single JSON
// document mapping the decimal id to the record. Every call reads the whole
// document and every mutation rewrites it; nothing is cached between calls.
type Repository[T Entity[T]] struct {
	conn     *jsonfile.Connection
	otel     otel.Otel
	document string
	entitas  string
}

func NewRepository[T Entity[T]](entitasName, documentName string, conn *jsonfile.Connection, otl otel.Otel) Repository[T] {
	return Repository[T]{
		conn:     conn,
		otel:     otl,
		document: documentName,
		entitas:  entitasName,
	}
}

func (repo *Repository[T]) spanName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, method)
}

// Init writes an empty document when none exists yet.
func (repo *Repository[T]) Init(ctx context.Context) (err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Init"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelDocumentAttributeKey, repo.document)

	exists, err := repo.conn.Exists(repo.document)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to check document (%s): %w", repo.entitas, err)
	}

	if exists {
		return nil
	}

	if err = repo.conn.Write(repo.document, []byte(constant.EmptyDocument)); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to initialize document (%s): %w", repo.entitas, err)
	}

	return nil
}

// Load reads every record of the document. A missing document is an empty store.
func (repo *Repository[T]) Load(ctx context.Context) (records map[string]T, err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Load"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelDocumentAttributeKey, repo.document)

	data, exists, err := repo.conn.Read(repo.document)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to load data (%s): %w", repo.entitas, err)
	}

	if !exists {
		return map[string]T{}, nil
	}

	records, err = repo.decode(data)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, err
	}

	return records, nil
}

func (repo *Repository[T]) decode(data []byte) (map[string]T, error) {
	var records map[string]T

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w (%s): %w", ErrCorruptDocument, repo.document, err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w (%s): trailing data after document", ErrCorruptDocument, repo.document)
	}

	if records == nil {
		return nil, fmt.Errorf("%w (%s): document is not an object", ErrCorruptDocument, repo.document)
	}

	for key, record := range records {
		id, err := shared.ParseID(key)
		if err != nil {
			return nil, fmt.Errorf("%w (%s): invalid key %q", ErrCorruptDocument, repo.document, key)
		}

		if record.Identifier() != id {
			return nil, fmt.Errorf("%w (%s): key %q holds record with id %d", ErrCorruptDocument, repo.document, key, record.Identifier())
		}

		if validator, ok := any(record).(Validator); ok {
			if err := validator.Validate(); err != nil {
				return nil, fmt.Errorf("%w (%s): record %q: %w", ErrCorruptDocument, repo.document, key, err)
			}
		}
	}

	return records, nil
}

// Save overwrites the document with records in a single write.
func (repo *Repository[T]) Save(ctx context.Context, records map[string]T) (err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Save"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelDocumentAttributeKey, repo.document)

	if records == nil {
		records = map[string]T{}
	}

	data, err := json.MarshalIndent(records, constant.Empty, constant.DocumentIndent)
	if err != nil {
		return fmt.Errorf("failed to encode data (%s): %w", repo.entitas, err)
	}

	if err = repo.conn.Write(repo.document, data); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to save data (%s): %w", repo.entitas, err)
	}

	return nil
}

// NextID returns the highest id present plus one, or 1 for an empty store.
func NextID[T any](records map[string]T) int {
	highest := 0

	for key := range records {
		id, err := shared.ParseID(key)
		if err != nil {
			continue
		}

		highest = max(highest, id)
	}

	return highest + 1
}

// Insert assigns the next id to model and persists it.
func (repo *Repository[T]) Insert(ctx context.Context, model T) (res T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := repo.Load(ctx)
	if err != nil {
		return res, err
	}

	id := NextID(records)
	res = model.WithID(id)
	records[shared.FormatID(id)] = res

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	if err = repo.Save(ctx, records); err != nil {
		return res, err
	}

	return res, nil
}

// Get returns the record with id; found is false when it is absent.
func (repo *Repository[T]) Get(ctx context.Context, id int) (res T, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	records, err := repo.Load(ctx)
	if err != nil {
		return res, false, err
	}

	res, found = records[shared.FormatID(id)]

	return res, found, nil
}

// GetAll returns every record ordered by id.
func (repo *Repository[T]) GetAll(ctx context.Context) (res []T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	res = slices.SortedFunc(maps.Values(records), func(a, b T) int {
		return a.Identifier() - b.Identifier()
	})

	return res, nil
}

// Modify loads the record with id, applies mutate and persists the result.
// When mutate fails nothing is written and its error is returned as is.
func (repo *Repository[T]) Modify(ctx context.Context, id int, mutate func(current T) (T, error)) (res T, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Modify"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	records, err := repo.Load(ctx)
	if err != nil {
		return res, false, err
	}

	key := shared.FormatID(id)

	current, found := records[key]
	if !found {
		return res, false, nil
	}

	updated, err := mutate(current)
	if err != nil {
		return current, true, err
	}

	records[key] = updated.WithID(id)

	if err = repo.Save(ctx, records); err != nil {
		return current, true, err
	}

	return records[key], true, nil
}

// Delete removes the record with id; found is false when it was absent.
func (repo *Repository[T]) Delete(ctx context.Context, id int) (found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Delete"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelEntityIDAttributeKey, id)

	records, err := repo.Load(ctx)
	if err != nil {
		return false, err
	}

	key := shared.FormatID(id)
	if _, found = records[key]; !found {
		return false, nil
	}

	delete(records, key)

	if err = repo.Save(ctx, records); err != nil {
		return true, err
	}

	return true, nil
}
