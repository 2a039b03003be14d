// Copyright 2024 manabiya
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package database

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const instrumentationName = "internal/pkg/database/tracing"

const spanKey = "tracing:span"

// TracingPlugin 给所有 gorm 操作加上 OpenTelemetry span
type TracingPlugin struct {
	tracer trace.Tracer
}

func NewTracingPlugin() *TracingPlugin {
	return &TracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *TracingPlugin) Name() string {
	return "TracingPlugin"
}

func (p *TracingPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Query().Before("gorm:query").Register("tracing:before_query", p.before("SELECT")); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("tracing:after_query", p.after); err != nil {
		return err
	}
	if err := db.Callback().Create().Before("gorm:create").Register("tracing:before_create", p.before("INSERT")); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").Register("tracing:after_create", p.after); err != nil {
		return err
	}
	if err := db.Callback().Update().Before("gorm:update").Register("tracing:before_update", p.before("UPDATE")); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").Register("tracing:after_update", p.after); err != nil {
		return err
	}
	if err := db.Callback().Delete().Before("gorm:delete").Register("tracing:before_delete", p.before("DELETE")); err != nil {
		return err
	}
	if err := db.Callback().Delete().After("gorm:delete").Register("tracing:after_delete", p.after); err != nil {
		return err
	}
	if err := db.Callback().Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("RAW")); err != nil {
		return err
	}
	return db.Callback().Raw().After("gorm:raw").Register("tracing:after_raw", p.after)
}

func (p *TracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		ctx := extractContext(db)
		ctx, span := p.tracer.Start(ctx,
			fmt.Sprintf("%s %s", db.Statement.Table, op),
			trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.Set(spanKey, span)
	}
}

func (p *TracingPlugin) after(db *gorm.DB) {
	v, ok := db.Get(spanKey)
	if !ok {
		return
	}
	span, ok := v.(trace.Span)
	if !ok {
		return
	}
	defer span.End()
	attrs := []attribute.KeyValue{
		attribute.String("db.system", "mysql"),
		attribute.String("db.table", db.Statement.Table),
	}
	if db.Statement.SQL.String() != "" {
		attrs = append(attrs, attribute.String("db.statement", db.Statement.SQL.String()))
	}
	if db.Statement.RowsAffected > 0 {
		attrs = append(attrs, attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	span.SetAttributes(attrs...)
	// 查不到记录是正常业务结果，不算错误
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func extractContext(db *gorm.DB) context.Context {
	if db.Statement == nil {
		return context.Background()
	}
	return db.Statement.Context
}
