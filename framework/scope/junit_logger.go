package scope

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/resultassert/resultassert/framework"
	"github.com/resultassert/resultassert/framework/helpers"
	"github.com/resultassert/resultassert/framework/opt"
)

// JUnitLogger collects check status during a Run and writes it as a JUnit XML report when EndLog
// is called.
type JUnitLogger struct {
	filePath   string
	properties map[string]string
	checkIDs   []ID // preserves the order that checks were started in
	checks     map[string]jUnitCheckStatus
	lock       sync.Mutex
}

type jUnitCheckStatus struct {
	failures  []error
	skipped   opt.Maybe[string]
	output    string
	startTime time.Time
	duration  time.Duration
}

// Struct definitions for the JUnit XML schema - see https://github.com/jstemmer/go-junit-report

type jUnitXMLDocument struct {
	XMLName xml.Name            `xml:"testsuites"`
	Suites  []jUnitXMLTestSuite `xml:"testsuite"`
}

type jUnitXMLTestSuite struct {
	XMLName    xml.Name           `xml:"testsuite"`
	Tests      int                `xml:"tests,attr"`
	Failures   int                `xml:"failures,attr"`
	Skipped    int                `xml:"skipped,attr"`
	Time       string             `xml:"time,attr"`
	Name       string             `xml:"name,attr"`
	Properties []jUnitXMLProperty `xml:"properties>property,omitempty"`
	TestCases  []jUnitXMLTestCase `xml:"testcase"`
}

type jUnitXMLTestCase struct {
	XMLName     xml.Name             `xml:"testcase"`
	Classname   string               `xml:"classname,attr"`
	Name        string               `xml:"name,attr"`
	Time        string               `xml:"time,attr"`
	SkipMessage *jUnitXMLSkipMessage `xml:"skipped,omitempty"`
	Failure     *jUnitXMLFailure     `xml:"failure,omitempty"`
}

type jUnitXMLSkipMessage struct {
	Message string `xml:"message,attr"`
}

type jUnitXMLProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type jUnitXMLFailure struct {
	Message  string `xml:"message,attr"`
	Type     string `xml:"type,attr"`
	Contents string `xml:",chardata"`
}

// NewJUnitLogger creates a JUnitLogger that will write to filePath. The properties are copied
// into every test suite element of the report, along with the filters if any.
func NewJUnitLogger(filePath string, properties map[string]string, filters RegexFilters) *JUnitLogger {
	props := make(map[string]string, len(properties)+2)
	for k, v := range properties {
		props[k] = v
	}
	if filters.MustMatch.IsDefined() {
		props["checks.filter.mustMatch"] = filters.MustMatch.String()
	}
	if filters.MustNotMatch.IsDefined() {
		props["checks.filter.mustNotMatch"] = filters.MustNotMatch.String()
	}
	return &JUnitLogger{
		filePath:   filePath,
		properties: props,
		checks:     make(map[string]jUnitCheckStatus),
	}
}

func (j *JUnitLogger) CheckStarted(id ID) {
	j.lock.Lock()
	defer j.lock.Unlock()
	j.checkIDs = append(j.checkIDs, id)
	j.checks[id.String()] = jUnitCheckStatus{startTime: time.Now()}
}

func (j *JUnitLogger) CheckError(id ID, err error) {
	j.lock.Lock()
	defer j.lock.Unlock()
	status := j.checks[id.String()]
	status.failures = append(status.failures, err)
	j.checks[id.String()] = status
}

func (j *JUnitLogger) CheckFinished(id ID, _ CheckResult, debugOutput framework.CapturedOutput) {
	j.lock.Lock()
	defer j.lock.Unlock()
	status := j.checks[id.String()]
	status.output = debugOutput.ToString("")
	status.duration = time.Since(status.startTime)
	j.checks[id.String()] = status
}

func (j *JUnitLogger) CheckSkipped(id ID, reason string) {
	j.lock.Lock()
	defer j.lock.Unlock()
	status := j.checks[id.String()]
	status.skipped = opt.Some(reason)
	j.checks[id.String()] = status
}

// EndLog writes the report.
func (j *JUnitLogger) EndLog() error {
	bytes, err := j.render()
	if err != nil {
		return err
	}
	fmt.Printf("Writing JUnit data to %s\n", j.filePath)
	return os.WriteFile(j.filePath, bytes, 0644) //nolint:gosec
}

func (j *JUnitLogger) render() ([]byte, error) {
	j.lock.Lock()
	defer j.lock.Unlock()

	var properties []jUnitXMLProperty
	for _, name := range helpers.SortedKeys(j.properties) {
		properties = append(properties, jUnitXMLProperty{Name: name, Value: j.properties[name]})
	}

	var doc jUnitXMLDocument
	for _, topLevelID := range getTopLevelIDs(j.checkIDs) {
		suite := jUnitXMLTestSuite{
			Name:       fmt.Sprintf("Result checks: %s", topLevelID),
			Properties: properties,
		}
		suiteTotalDuration := time.Duration(0)
		for _, id := range j.checkIDs {
			if len(id) == 0 || id[0] != topLevelID {
				continue
			}
			status := j.checks[id.String()]

			suite.Tests++
			suiteTotalDuration += status.duration

			testCase := jUnitXMLTestCase{
				Classname: topLevelID,
				Name:      id.String(),
				Time:      jUnitDurationString(status.duration),
			}
			if status.skipped.IsDefined() {
				suite.Skipped++
				testCase.SkipMessage = &jUnitXMLSkipMessage{Message: status.skipped.Value()}
			}
			if len(status.failures) != 0 {
				suite.Failures++
				testCase.Failure = &jUnitXMLFailure{
					Message:  failureMessages(status.failures),
					Contents: status.output,
				}
			}
			suite.TestCases = append(suite.TestCases, testCase)
		}
		suite.Time = jUnitDurationString(suiteTotalDuration)
		doc.Suites = append(doc.Suites, suite)
	}

	bytes, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(bytes, '\n'), nil
}

func failureMessages(errs []error) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		message := e.Error()
		var ce CheckError
		if errors.As(e, &ce) {
			message = ce.Report()
		}
		messages = append(messages, message)
	}
	return strings.Join(messages, "\n")
}

func getTopLevelIDs(allIDs []ID) []string {
	var ret []string
	seen := make(map[string]bool)
	for _, id := range allIDs {
		if len(id) != 0 && !seen[id[0]] {
			ret = append(ret, id[0])
			seen[id[0]] = true
		}
	}
	return ret
}

func jUnitDurationString(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
