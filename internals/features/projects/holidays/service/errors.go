// file: internals/features/projects/holidays/service/errors.go
package service

import "errors"

// Sentinel errors layer service — controller memetakan via errors.Is.
var (
	// input hilang/malformed (projectId, tanggal, weekday set kosong, days <= 0)
	ErrInvalidInput = errors.New("invalid input")

	// start > end pada operasi ber-range
	ErrInvalidRange = errors.New("invalid date range: start after end")

	// project tidak ditemukan / sudah dihapus
	ErrProjectNotFound = errors.New("project not found")

	// baris holiday tidak ditemukan (update/delete by id)
	ErrHolidayNotFound = errors.New("holiday not found")

	// kegagalan persistence; loop multi-tanggal menangkap ini per-iterasi
	// dan tetap melaporkan agregat parsial (lihat GenerateResult.Errors)
	ErrStore = errors.New("holiday store failure")
)
