package json_test

// This package provides a compatibility layer over encoding/json and
// goccy/go-json. No tests are needed as this is a thin wrapper that
// delegates to the selected implementation.
//
// The actual JSON functionality is tested through the parent package tests.
