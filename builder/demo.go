package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/designlab/patterns/catalog"
)

// Demo returns the runnable builder demonstration.
func Demo() catalog.Demo {
	return catalog.Demo{
		Name:    "builder",
		Pattern: "builder",
		Summary: "fluent, validated assembly of an immutable HTTP request",
		Run:     runDemo,
	}
}

func runDemo(ctx context.Context, log catalog.Logger) error {
	// Full assembly: setters chain, Build validates once at the end.
	req, err := NewRequest().
		Method("post").
		URL("https://api.example.com/v1/items").
		Header("Content-Type", "application/json").
		Body([]byte(`{"sku":"A-42"}`)).
		Build()
	if err != nil {
		return err
	}

	log.Infof("built %s %s (id=%s, timeout=%s default)", req.Method(), req.URL(), req.ID(), req.Timeout())
	if req.Timeout() != DefaultTimeout {
		return fmt.Errorf("builder: expected default timeout %s, got %s", DefaultTimeout, req.Timeout())
	}

	// Omitting both required fields reports both failures at once.
	_, err = NewRequest().Build()
	var missing MissingFieldError
	if !errors.As(err, &missing) {
		return fmt.Errorf("builder: expected MissingFieldError, got %v", err)
	}
	log.Infof("empty builder rejected as expected:\n%v", err)

	return nil
}
