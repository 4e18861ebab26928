// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

// Package envfile renders structs as KEY=VALUE lines for consumption by
// shell scripts. Keys come from `env` struct tags; fields without a tag are
// ignored. Every tagged field is written, even when its value is empty, so
// callers can rely on a fixed set of keys.
package envfile

import (
	"fmt"
	"io"
	"os"
	"reflect"
)

// Marshal writes the `env`-tagged fields of v to w, one KEY=VALUE line per
// field, in struct declaration order.
func Marshal(w io.Writer, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return fmt.Errorf("envfile: expected a struct, got %T", v)
	}

	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		tag := rt.Field(i).Tag.Get("env")
		if tag == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%v\n", tag, rv.Field(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}

// Write marshals v into the file at path, creating or truncating it.
func Write(path string, v any) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create env file: %w", err)
	}
	defer f.Close()

	if err := Marshal(f, v); err != nil {
		return fmt.Errorf("marshal env file: %w", err)
	}
	return f.Close()
}
