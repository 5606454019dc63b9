package services

import (
	"context"
	"errors"
)

type brokenRepo struct{}

var errBroken = errors.New("storage disabled")

func (brokenRepo) Get(context.Context, string) ([]byte, error) { return nil, errBroken }
func (brokenRepo) Set(context.Context, string, []byte) error { return errBroken }
func (brokenRepo) Delete(context.Context, string) error { return errBroken }
func (brokenRepo) Keys(context.Context, string) ([]string, error) { return nil, errBroken }
func (brokenRepo) Clear(context.Context) error { return errBroken }
