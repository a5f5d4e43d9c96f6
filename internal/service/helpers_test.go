package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubTx runs the transaction body directly, or fails without running it
// when err is set. The commit/abort semantics under test are "the body's
// error propagates and later steps never run".
type stubTx struct {
	err error
}

func (s stubTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.err != nil {
		return s.err
	}
	return fn(ctx)
}

// memberAdderFunc adapts a function to the MemberAdder interface.
type memberAdderFunc func(ctx context.Context, teamID, userID primitive.ObjectID) error

func (f memberAdderFunc) AddMemberInTx(ctx context.Context, teamID, userID primitive.ObjectID) error {
	return f(ctx, teamID, userID)
}
