package model

import "gonum.org/v1/gonum/mat"

// Transformer は行列を行列へ写す変換のインターフェース
type Transformer interface {
	// Fit は変換に必要なパラメータを学習する
	Fit(X mat.Matrix) error

	// Transform はデータを変換する
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// LabelEncoder は文字列ラベルとベクトル表現を相互に変換するインターフェース
type LabelEncoder interface {
	// Fit はラベル集合を学習する
	Fit(labels []string) error

	// Transform はラベルをベクトルに変換する
	Transform(label string) (*mat.VecDense, error)

	// InverseTransform はベクトルをラベルに戻す
	InverseTransform(v mat.Vector) (string, error)

	// Classes は学習したラベルを列順に返す
	Classes() []string
}
