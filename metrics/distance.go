// Package metrics は特徴量ベクトル間の距離やラベル分布などの集計を提供する
package metrics

import (
	"github.com/YuminosukeSato/mlprep/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// EuclideanDistance は 2 つのベクトルのユークリッド距離 sqrt(Σ(a_i - b_i)²) を計算する
// 長さが異なる場合は DimensionError を返す。
func EuclideanDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.NewDimensionError("EuclideanDistance", len(a), len(b), 1)
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, 2), nil
}

// SquaredEuclideanDistance は距離の二乗 Σ(a_i - b_i)² を計算する
// 最近傍探索のように順序だけが必要な場合は平方根を省略できる。
func SquaredEuclideanDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.NewDimensionError("SquaredEuclideanDistance", len(a), len(b), 1)
	}
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum, nil
}
