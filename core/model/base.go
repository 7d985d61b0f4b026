// Package model はエンコーダ・変換器が共有する基底型とインターフェースを定義する。
package model

import "github.com/YuminosukeSato/mlprep/pkg/errors"

// EstimatorState は変換器の学習状態を表す
type EstimatorState int

const (
	// NotFitted は未学習の状態
	NotFitted EstimatorState = iota
	// Fitted は学習済みの状態
	Fitted
)

// BaseEstimator は学習状態を持つ全ての変換器に埋め込む基底構造体
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted は学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted は学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset は初期状態に戻す
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}

// RequireFitted は未学習なら NotFittedError を返す
//
// 使用例:
//
//	if err := b.RequireFitted("LabelBinarizer", "Transform"); err != nil {
//	    return nil, err
//	}
func (e *BaseEstimator) RequireFitted(name, method string) error {
	if !e.IsFitted() {
		return errors.NewNotFittedError(name, method)
	}
	return nil
}
