package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/hukunda/ButtMap/internal/model"
	"github.com/hukunda/ButtMap/internal/store"
)

func exportFixture(t *testing.T) (*store.Store, ExportService, model.SeatingLayout) {
	t.Helper()
	st := newTestStore()
	svc := NewExportService(st, zap.NewNop())

	layout, err := st.CreateGridLayout(model.Monday, "2025-W37", "")
	if err != nil {
		t.Fatalf("CreateGridLayout 应成功: %v", err)
	}
	st.UpdateSeat(layout.ID, layout.Seats[0].ID, store.SeatUpdate{
		OccupiedBy:   strPtr("Dana"),
		OccupiedByID: strPtr("u1"),
	})
	refreshed, _ := st.LayoutByID(layout.ID)
	return st, svc, refreshed
}

func TestExportService_Excel(t *testing.T) {
	_, svc, layout := exportFixture(t)

	file, err := svc.Export(context.Background(), layout.ID, "xlsx")
	if err != nil {
		t.Fatalf("导出 Excel 应成功: %v", err)
	}
	if file.FileName != "seating-2025-W37-monday.xlsx" {
		t.Errorf("文件名不符，实际=%s", file.FileName)
	}

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	if err != nil {
		t.Fatalf("导出内容应为合法 Excel: %v", err)
	}
	defer f.Close()

	// 座位 0.1（展示行 1、列 1）落在 B2
	got, err := f.GetCellValue("Seating", "B2")
	if err != nil {
		t.Fatalf("读取单元格应成功: %v", err)
	}
	if got != "Dana" {
		t.Errorf("期望 B2=Dana，实际=%q", got)
	}
}

func TestExportService_ExcelTag(t *testing.T) {
	_, svc, layout := exportFixture(t)

	// excel 与 xlsx 是同一导出器的两种写法
	file, err := svc.Export(context.Background(), layout.ID, "excel")
	if err != nil {
		t.Fatalf("excel 标签应被接受: %v", err)
	}
	if file.FileName != "seating-2025-W37-monday.xlsx" {
		t.Errorf("文件名不符，实际=%s", file.FileName)
	}
	if _, err := excelize.OpenReader(bytes.NewReader(file.Content)); err != nil {
		t.Fatalf("导出内容应为合法 Excel: %v", err)
	}
}

func TestExportService_Calendar(t *testing.T) {
	_, svc, layout := exportFixture(t)

	file, err := svc.Export(context.Background(), layout.ID, "ics")
	if err != nil {
		t.Fatalf("导出日历应成功: %v", err)
	}
	if file.ContentType != "text/calendar" {
		t.Errorf("期望 text/calendar，实际=%s", file.ContentType)
	}

	content := string(file.Content)
	if !strings.Contains(content, "BEGIN:VCALENDAR") || !strings.Contains(content, "BEGIN:VEVENT") {
		t.Error("导出内容应为 iCalendar 且包含事件")
	}
	if !strings.Contains(content, "Dana") {
		t.Error("事件摘要应包含占用者姓名")
	}
	// 2025-W37 周一 = 2025-09-08
	if !strings.Contains(content, "20250908") {
		t.Error("事件日期应由 ISO 周与工作日推算")
	}
}

func TestExportService_UnsupportedFormat(t *testing.T) {
	_, svc, layout := exportFixture(t)

	// pdf 是预留标签，未知标签同样拒绝
	for _, format := range []string{"pdf", "docx"} {
		if _, err := svc.Export(context.Background(), layout.ID, format); !errors.Is(err, ErrExportFormatUnsupported) {
			t.Errorf("格式 %s 期望 ErrExportFormatUnsupported，实际: %v", format, err)
		}
	}
}

func TestExportService_LayoutNotFound(t *testing.T) {
	_, svc, _ := exportFixture(t)

	if _, err := svc.Export(context.Background(), "no-such-layout", "xlsx"); !errors.Is(err, ErrLayoutNotFound) {
		t.Errorf("期望 ErrLayoutNotFound，实际: %v", err)
	}
}
