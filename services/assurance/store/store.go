// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package store reads organization records from a directory of YAML files.
//
// One file per organization (profile, findings, tech stack, scheduled
// audits). The store is the upstream read accessor behind the
// governance.Reader interface: scoring never writes back to it. Files
// that fail to parse or validate are skipped with a logged warning so one
// malformed record cannot take down the whole inventory. A file watcher
// reloads the directory when records change on disk.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/veridianlabs/govhealth/pkg/logging"
	"github.com/veridianlabs/govhealth/services/governance"
)

// ErrNotFound is returned when no record exists for the requested
// organization id.
var ErrNotFound = errors.New("organization not found")

// Store is a read-only, directory-backed collection of organization
// records. Safe for concurrent use; Watch swaps the record set atomically
// under the lock.
type Store struct {
	dir      string
	log      *logging.Logger
	validate *validator.Validate

	mu      sync.RWMutex
	records map[string]governance.OrganizationRecord

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// New creates a Store over the given directory and performs the initial
// load. The directory must exist; individual bad files are skipped, not
// fatal. A nil logger suppresses load warnings.
func New(dir string, log *logging.Logger) (*Store, error) {
	s := &Store{
		dir:      dir,
		log:      log,
		validate: validator.New(),
		records:  map[string]governance.OrganizationRecord{},
	}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Organization returns the record for one organization id.
func (s *Store) Organization(id string) (governance.OrganizationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return governance.OrganizationRecord{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return record, nil
}

// Organizations returns every loaded record, ordered by organization id.
func (s *Store) Organizations() ([]governance.OrganizationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]governance.OrganizationRecord, 0, len(s.records))
	for _, record := range s.records {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Profile.ID < out[j].Profile.ID
	})
	return out, nil
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Watch starts reloading the directory whenever a record file is created,
// modified, renamed, or removed. Call Close to stop watching.
func (s *Store) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create the directory watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %q: %w", s.dir, err)
	}

	s.watcher = watcher
	s.done = make(chan struct{})

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !isRecordFile(event.Name) {
					continue
				}
				if err := s.reload(); err != nil {
					s.warn("record directory reload failed", "error", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.warn("record directory watch error", "error", err)
			case <-s.done:
				return
			}
		}
	}()
	return nil
}

// Close stops the watcher. Safe to call when Watch was never started.
func (s *Store) Close() error {
	if s.watcher == nil {
		return nil
	}
	close(s.done)
	return s.watcher.Close()
}

// reload re-reads every record file and swaps the record set in one step,
// so readers never observe a partially loaded directory.
func (s *Store) reload() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read the record directory %q: %w", s.dir, err)
	}

	records := make(map[string]governance.OrganizationRecord, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isRecordFile(entry.Name()) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		record, err := s.loadFile(path)
		if err != nil {
			s.warn("skipping malformed organization record", "file", entry.Name(), "error", err)
			continue
		}
		if _, dup := records[record.Profile.ID]; dup {
			s.warn("skipping duplicate organization id", "file", entry.Name(), "org_id", record.Profile.ID)
			continue
		}
		records[record.Profile.ID] = record
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	return nil
}

// loadFile parses and validates a single record file. Enum fields reject
// unknown values at decode time; the validator covers required fields.
func (s *Store) loadFile(path string) (governance.OrganizationRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return governance.OrganizationRecord{}, fmt.Errorf("failed to read %q: %w", path, err)
	}

	var record governance.OrganizationRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return governance.OrganizationRecord{}, fmt.Errorf("failed to unmarshal %q: %w", path, err)
	}

	if err := s.validate.Struct(record.Profile); err != nil {
		return governance.OrganizationRecord{}, fmt.Errorf("invalid organization profile: %w", err)
	}
	for i, f := range record.Findings {
		if err := s.validate.Struct(f); err != nil {
			return governance.OrganizationRecord{}, fmt.Errorf("invalid finding %d: %w", i, err)
		}
	}
	for i, item := range record.TechStack {
		if err := s.validate.Struct(item); err != nil {
			return governance.OrganizationRecord{}, fmt.Errorf("invalid tech stack item %d: %w", i, err)
		}
	}
	for i, audit := range record.ScheduledAudits {
		if err := s.validate.Struct(audit); err != nil {
			return governance.OrganizationRecord{}, fmt.Errorf("invalid scheduled audit %d: %w", i, err)
		}
	}
	return record, nil
}

func (s *Store) warn(msg string, args ...any) {
	if s.log != nil {
		s.log.Warn(msg, args...)
	}
}

func isRecordFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

var _ governance.Reader = (*Store)(nil)
