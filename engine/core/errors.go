package core

import (
	"errors"
)

var (
	// ErrInvalidInputShape indicates a vertex or index array whose rank or
	// dimensions do not match the contract of the chosen construction path.
	ErrInvalidInputShape = errors.New("invalid input shape")
	// ErrUnsupportedElementArity indicates an element index array whose
	// per-element width is neither 4 (tetrahedra) nor 8 (hexahedra).
	ErrUnsupportedElementArity = errors.New("unsupported element arity")
	// ErrOutOfRangeIndex indicates an index value >= the declared vertex count.
	ErrOutOfRangeIndex = errors.New("index out of range")
	// ErrBufferProtocol indicates a violation of the acquire/release buffer
	// discipline. Not recoverable; it means the lowering logic itself is wrong.
	ErrBufferProtocol = errors.New("buffer protocol violation")
	// ErrSceneLimit indicates the scene has no free geometry slots left.
	ErrSceneLimit = errors.New("scene geometry limit reached")
	// ErrSceneCommitted indicates an attempt to register geometry after commit.
	ErrSceneCommitted = errors.New("scene already committed")
	ErrUnknown        = errors.New("unknown")
)
