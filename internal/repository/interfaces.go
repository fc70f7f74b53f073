package repository

import "encoding/json"

// ScheduleRepositoryInterface is the persistence gateway the service
// layer depends on: the document is an opaque blob, read fully and
// replaced fully. Get returns (nil, nil) when no document exists yet.
type ScheduleRepositoryInterface interface {
	Get(key string) (json.RawMessage, error)
	Put(key string, doc json.RawMessage) error
}
