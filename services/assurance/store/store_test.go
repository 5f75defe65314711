// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridianlabs/govhealth/services/governance"
)

const validRecord = `
organization:
  id: acme-payments
  industry: technology
  processes_cardholder_data: true
  application_tier: "Tier 2"
  sla_target: 99.95
findings:
  - id: f-1
    severity: high
    status: open
    title: TLS 1.0 still enabled on edge
tech_stack:
  - component: node
    version: "18"
scheduled_audits:
  - id: a-1
    framework: PCI-DSS v4.0
    days_until: 45
`

func writeRecord(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestStore_LoadAndLookup(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "acme.yaml", validRecord)

	s, err := New(dir, nil)
	require.NoError(t, err)
	defer s.Close()

	record, err := s.Organization("acme-payments")
	require.NoError(t, err)
	assert.Equal(t, "technology", record.Profile.Industry)
	assert.True(t, record.Profile.ProcessesCardholderData)
	require.Len(t, record.Findings, 1)
	assert.Equal(t, governance.SeverityHigh, record.Findings[0].Severity)
	require.Len(t, record.ScheduledAudits, 1)
	assert.Equal(t, 45, record.ScheduledAudits[0].DaysUntil)
}

func TestStore_NotFound(t *testing.T) {
	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)

	_, err = s.Organization("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_OrganizationsSortedByID(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "b.yaml", "organization:\n  id: org-b\n")
	writeRecord(t, dir, "a.yml", "organization:\n  id: org-a\n")
	writeRecord(t, dir, "c.yaml", "organization:\n  id: org-c\n")

	s, err := New(dir, nil)
	require.NoError(t, err)

	records, err := s.Organizations()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "org-a", records[0].Profile.ID)
	assert.Equal(t, "org-b", records[1].Profile.ID)
	assert.Equal(t, "org-c", records[2].Profile.ID)
}

func TestStore_SkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "good.yaml", validRecord)
	// Unknown severity value fails the strict enum decode.
	writeRecord(t, dir, "bad-enum.yaml", `
organization:
  id: bad-enum
findings:
  - id: f-1
    severity: catastrophic
    status: open
`)
	// Missing required organization id fails validation.
	writeRecord(t, dir, "bad-missing-id.yaml", "organization:\n  industry: saas\n")
	// Not YAML at all.
	writeRecord(t, dir, "bad-syntax.yaml", "{{{")
	// Non-record files are ignored entirely.
	writeRecord(t, dir, "README.md", "# not a record")

	s, err := New(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len())
	_, err = s.Organization("acme-payments")
	assert.NoError(t, err)
}

func TestStore_SkipsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "a.yaml", "organization:\n  id: org-dup\n  industry: saas\n")
	writeRecord(t, dir, "b.yaml", "organization:\n  id: org-dup\n  industry: fintech\n")

	s, err := New(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestStore_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}

func TestStore_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "a.yaml", "organization:\n  id: org-a\n")

	s, err := New(dir, nil)
	require.NoError(t, err)
	require.NoError(t, s.Watch())
	defer s.Close()

	writeRecord(t, dir, "b.yaml", "organization:\n  id: org-b\n")
	require.Eventually(t, func() bool {
		return s.Len() == 2
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, os.Remove(filepath.Join(dir, "a.yaml")))
	require.Eventually(t, func() bool {
		_, err := s.Organization("org-a")
		return err != nil && s.Len() == 1
	}, 2*time.Second, 20*time.Millisecond)
}
