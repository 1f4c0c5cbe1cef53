package should

import (
	"io"
	"time"

	"github.com/resultassert/resultassert/actionresult"
	"github.com/resultassert/resultassert/framework/compare"
	"github.com/resultassert/resultassert/framework/helpers"
	"github.com/resultassert/resultassert/framework/opt"
)

// fileAssertions checks the properties that all file results have in common.
type fileAssertions struct {
	assertions
	file *actionresult.FileResult
}

func newFileAssertions(t helpers.TestContext, kind actionresult.Kind, file *actionresult.FileResult) fileAssertions {
	return fileAssertions{assertions: newAssertions(t, kind), file: file}
}

func (a fileAssertions) contentTypeIs(expected string, because []interface{}) {
	a.t.Helper()
	a.contentType(a.file.ContentType, expected, because)
}

func (a fileAssertions) downloadNameIs(expected string, because []interface{}) {
	a.t.Helper()
	compare.Equal(a.t, a.label("FileDownloadName"), a.file.FileDownloadName, expected, because...)
}

func (a fileAssertions) entityTagIs(expected string, because []interface{}) {
	a.t.Helper()
	compare.Equal(a.t, a.label("EntityTag"), a.file.EntityTag, expected, because...)
}

func (a fileAssertions) lastModifiedIs(expected time.Time, because []interface{}) {
	a.t.Helper()
	compare.Time(a.t, a.label("LastModified"), a.file.LastModified, opt.Timestamp(expected), because...)
}

func (a fileAssertions) rangeProcessingIs(expected bool, because []interface{}) {
	a.t.Helper()
	compare.Equal(a.t, a.label("EnableRangeProcessing"), a.file.EnableRangeProcessing, expected, because...)
}

type FileContentAssertions struct {
	fileAssertions
	Subject *actionresult.FileContentResult
}

// WithFileContents checks the file contents byte for byte.
func (a *FileContentAssertions) WithFileContents(expected []byte, because ...interface{}) *FileContentAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("FileContents"), a.Subject.FileContents, expected, because...)
	return a
}

// WithContentType checks the content type, ignoring case.
func (a *FileContentAssertions) WithContentType(expected string, because ...interface{}) *FileContentAssertions {
	a.t.Helper()
	a.contentTypeIs(expected, because)
	return a
}

// WithFileDownloadName checks the name offered to the client for saving the file.
func (a *FileContentAssertions) WithFileDownloadName(expected string, because ...interface{}) *FileContentAssertions {
	a.t.Helper()
	a.downloadNameIs(expected, because)
	return a
}

// WithEntityTag checks the ETag.
func (a *FileContentAssertions) WithEntityTag(expected string, because ...interface{}) *FileContentAssertions {
	a.t.Helper()
	a.entityTagIs(expected, because)
	return a
}

// WithLastModified checks the timestamp to the second. A zero expected time means there should
// be no timestamp.
func (a *FileContentAssertions) WithLastModified(expected time.Time, because ...interface{}) *FileContentAssertions {
	a.t.Helper()
	a.lastModifiedIs(expected, because)
	return a
}

// WithEnableRangeProcessing checks whether range requests are enabled.
func (a *FileContentAssertions) WithEnableRangeProcessing(expected bool, because ...interface{}) *FileContentAssertions {
	a.t.Helper()
	a.rangeProcessingIs(expected, because)
	return a
}

type FileStreamAssertions struct {
	fileAssertions
	Subject *actionresult.FileStreamResult
}

// WithFileStream checks that the result sends exactly the given stream. The stream is compared
// by identity and is not read.
func (a *FileStreamAssertions) WithFileStream(expected io.Reader, because ...interface{}) *FileStreamAssertions {
	a.t.Helper()
	compare.Same(a.t, a.label("FileStream"), a.Subject.FileStream, expected, because...)
	return a
}

// WithContentType checks the content type, ignoring case.
func (a *FileStreamAssertions) WithContentType(expected string, because ...interface{}) *FileStreamAssertions {
	a.t.Helper()
	a.contentTypeIs(expected, because)
	return a
}

// WithFileDownloadName checks the name offered to the client for saving the file.
func (a *FileStreamAssertions) WithFileDownloadName(expected string, because ...interface{}) *FileStreamAssertions {
	a.t.Helper()
	a.downloadNameIs(expected, because)
	return a
}

// WithEntityTag checks the ETag.
func (a *FileStreamAssertions) WithEntityTag(expected string, because ...interface{}) *FileStreamAssertions {
	a.t.Helper()
	a.entityTagIs(expected, because)
	return a
}

// WithLastModified checks the timestamp to the second. A zero expected time means there should
// be no timestamp.
func (a *FileStreamAssertions) WithLastModified(expected time.Time, because ...interface{}) *FileStreamAssertions {
	a.t.Helper()
	a.lastModifiedIs(expected, because)
	return a
}

// WithEnableRangeProcessing checks whether range requests are enabled.
func (a *FileStreamAssertions) WithEnableRangeProcessing(expected bool, because ...interface{}) *FileStreamAssertions {
	a.t.Helper()
	a.rangeProcessingIs(expected, because)
	return a
}

type PhysicalFileAssertions struct {
	fileAssertions
	Subject *actionresult.PhysicalFileResult
}

// WithFileName checks the path of the physical file.
func (a *PhysicalFileAssertions) WithFileName(expected string, because ...interface{}) *PhysicalFileAssertions {
	a.t.Helper()
	compare.Equal(a.t, a.label("FileName"), a.Subject.FileName, expected, because...)
	return a
}

// WithContentType checks the content type, ignoring case.
func (a *PhysicalFileAssertions) WithContentType(expected string, because ...interface{}) *PhysicalFileAssertions {
	a.t.Helper()
	a.contentTypeIs(expected, because)
	return a
}

// WithFileDownloadName checks the name offered to the client for saving the file.
func (a *PhysicalFileAssertions) WithFileDownloadName(expected string, because ...interface{}) *PhysicalFileAssertions {
	a.t.Helper()
	a.downloadNameIs(expected, because)
	return a
}

// WithEntityTag checks the ETag.
func (a *PhysicalFileAssertions) WithEntityTag(expected string, because ...interface{}) *PhysicalFileAssertions {
	a.t.Helper()
	a.entityTagIs(expected, because)
	return a
}

// WithLastModified checks the timestamp to the second. A zero expected time means there should
// be no timestamp.
func (a *PhysicalFileAssertions) WithLastModified(expected time.Time, because ...interface{}) *PhysicalFileAssertions {
	a.t.Helper()
	a.lastModifiedIs(expected, because)
	return a
}

// WithEnableRangeProcessing checks whether range requests are enabled.
func (a *PhysicalFileAssertions) WithEnableRangeProcessing(expected bool, because ...interface{}) *PhysicalFileAssertions {
	a.t.Helper()
	a.rangeProcessingIs(expected, because)
	return a
}
