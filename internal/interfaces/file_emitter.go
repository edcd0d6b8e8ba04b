package interfaces

import "context"

// FileEmitter receives exported files, e.g. to write them to disk or bundle
// them into a workbook.
type FileEmitter interface {
	Emit(ctx context.Context, filename, content string) error
}
