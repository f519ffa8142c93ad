package timetable

import (
	"context"
	"time"
	"vt-timetable/lib/telemetry"
	"vt-timetable/lib/textutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/timetable")

// DefaultBaseUrl is the Banner SSB endpoint behind the Virginia Tech
// Timetable of Classes. Searches POST to it, the landing page (terms
// and subjects) is a plain GET.
const DefaultBaseUrl = "https://apps.es.vt.edu/ssb/HZSKVTSC.P_ProcRequest"

const DefaultTimeout = time.Second * 30

type Client struct {
	BaseUrl string
	Http    *resty.Client
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// defaults to DefaultTimeout
	Timeout time.Duration
}

// NewClient builds a timetable client. The underlying http client is
// stateless and reentrant, so one Client may be shared by concurrent
// callers.
func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New()
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "scrapers/timetable/http")

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}
}

// Search runs one timetable search and returns the matching sections in
// the order the timetable lists them. Each call is a single best-effort
// attempt: there is no retry or backoff here, retry policy belongs to
// the caller since the timetable's rate limiting is unknown.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]Course, error) {
	ctx, span := tracer.Start(ctx, "client:Search")
	defer span.End()

	form, err := req.formData()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid search parameters")
		return nil, err
	}

	res, err := c.Http.R().
		SetContext(ctx).
		SetFormData(form).
		Post(c.BaseUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, &TransportError{URL: c.BaseUrl, Err: err}
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "bad response status")
		return nil, &TransportError{URL: c.BaseUrl, StatusCode: res.StatusCode()}
	}

	courses, err := parseSearchResults(req.Year, req.Semester, res.Body())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse results")
		return nil, err
	}

	if req.Instructor != "" {
		courses = filterByInstructor(courses, req.Instructor)
	}
	return courses, nil
}

func filterByInstructor(courses []Course, instructor string) []Course {
	filtered := []Course{}
	for _, c := range courses {
		if textutil.MatchName(c.Instructor, instructor) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// GetCRN looks up the single section with the given CRN. CRNs are
// unique within a semester, so zero matches yield a NotFoundError and
// more than one an AmbiguousResultError.
func (c *Client) GetCRN(ctx context.Context, year string, semester Semester, crn string) (Course, error) {
	ctx, span := tracer.Start(ctx, "client:GetCRN")
	defer span.End()

	courses, err := c.Search(ctx, SearchRequest{
		Year:     year,
		Semester: semester,
		CRN:      crn,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return Course{}, err
	}

	switch len(courses) {
	case 0:
		err := &NotFoundError{CRN: crn, Year: year, Semester: semester}
		span.SetStatus(codes.Error, err.Error())
		return Course{}, err
	case 1:
		return courses[0], nil
	default:
		err := &AmbiguousResultError{CRN: crn, Count: len(courses)}
		span.SetStatus(codes.Error, err.Error())
		return Course{}, err
	}
}

// Subjects returns the department code/name pairs the timetable knows
// about, duplicates collapsed. No ordering is guaranteed.
func (c *Client) Subjects(ctx context.Context) ([]Subject, error) {
	ctx, span := tracer.Start(ctx, "client:Subjects")
	defer span.End()

	body, err := c.getLandingPage(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}

	subjects, err := parseSubjects(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse subjects")
		return nil, err
	}
	return subjects, nil
}

// Semesters returns the terms the timetable currently offers for
// searching.
func (c *Client) Semesters(ctx context.Context) ([]Term, error) {
	ctx, span := tracer.Start(ctx, "client:Semesters")
	defer span.End()

	body, err := c.getLandingPage(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}

	terms, err := parseTerms(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse terms")
		return nil, err
	}
	return terms, nil
}

func (c *Client) getLandingPage(ctx context.Context) ([]byte, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(c.BaseUrl)
	if err != nil {
		return nil, &TransportError{URL: c.BaseUrl, Err: err}
	}
	if res.IsError() {
		return nil, &TransportError{URL: c.BaseUrl, StatusCode: res.StatusCode()}
	}
	return res.Body(), nil
}
