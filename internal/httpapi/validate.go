package httpapi

import (
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

// Locals keys for the parsed, validated request sections. Handlers read these
// instead of re-parsing the raw request.
const (
	localParams = "validated:params"
	localBody   = "validated:body"
	localQuery  = "validated:query"
)

// RequestSchema declares which request sections a route validates and into
// what payload type. Each factory returns a fresh pointer per request; nil
// sections pass through unvalidated. The schema is plain data consumed by the
// single Validate middleware, so per-route validation stays declarative.
type RequestSchema struct {
	Params func() validation.Validatable
	Body   func() validation.Validatable
	Query  func() validation.Validatable

	// QueryKeys, when set, is the exhaustive list of accepted query
	// parameters; any other key fails validation.
	QueryKeys []string
}

// Validate parses and validates every configured section before the handler
// runs. Sections are handled independently: a missing body never skips query
// validation. On success the typed payloads are stored in Locals; on failure
// the request is rejected with a 400 carrying the concatenated per-field
// messages.
func Validate(schema RequestSchema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(schema.QueryKeys) > 0 {
			if err := checkQueryKeys(c, schema.QueryKeys); err != nil {
				return err
			}
		}

		sections := []struct {
			key     string
			factory func() validation.Validatable
			parse   func(*fiber.Ctx, any) error
		}{
			{localParams, schema.Params, parseParams},
			{localBody, schema.Body, parseBody},
			{localQuery, schema.Query, parseQuery},
		}

		for _, section := range sections {
			if section.factory == nil {
				continue
			}
			payload := section.factory()
			if err := section.parse(c, payload); err != nil {
				return validationError(err)
			}
			if err := payload.Validate(); err != nil {
				return validationError(err)
			}
			c.Locals(section.key, payload)
		}
		return c.Next()
	}
}

func parseParams(c *fiber.Ctx, dst any) error { return c.ParamsParser(dst) }
func parseBody(c *fiber.Ctx, dst any) error   { return c.BodyParser(dst) }
func parseQuery(c *fiber.Ctx, dst any) error  { return c.QueryParser(dst) }

// checkQueryKeys rejects query parameters outside the allowed set.
func checkQueryKeys(c *fiber.Ctx, allowed []string) error {
	var unknown []string
	c.Context().QueryArgs().VisitAll(func(key, _ []byte) {
		name := string(key)
		for _, ok := range allowed {
			if name == ok {
				return
			}
		}
		unknown = append(unknown, name)
	})
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return validationError(fmt.Errorf("unrecognized query keys: %s", strings.Join(unknown, ", ")))
}

// validationError flattens an ozzo error map into one human-readable message,
// one field per entry, joined the way clients already expect.
func validationError(err error) error {
	message := err.Error()

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for field := range fieldErrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			parts = append(parts, fmt.Sprintf("%s %s", field, fieldErrs[field]))
		}
		message = strings.Join(parts, " - ")
	}

	return errors.New(message, errors.CategoryValidation).
		WithCode(errors.CodeBadRequest).
		WithTextCode("VALIDATION")
}

// payloadFromCtx returns the validated section stored by Validate. The zero T
// comes back when the route declared no schema for the section.
func payloadFromCtx[T validation.Validatable](c *fiber.Ctx, key string) T {
	payload, _ := c.Locals(key).(T)
	return payload
}
