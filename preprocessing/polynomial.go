package preprocessing

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/mlprep/core/model"
	"github.com/YuminosukeSato/mlprep/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// NPolynomialTerms は次数 degree の 2 変数多項式展開で生成される項数を返す
// (degree+1)(degree+2)/2
func NPolynomialTerms(degree int) int {
	if degree < 0 {
		return 0
	}
	return (degree + 1) * (degree + 2) / 2
}

// PolynomialTerms は x1, x2 から全ての単項式 x1^(n-k) * x2^k を生成する
// n = 0..degree, k = 0..n の順（n の昇順、次に k の昇順）に並ぶ。
// n=0, k=0 の項は常に 1 なので、先頭要素がバイアス項を兼ねる。
//
// 使用例:
//
//	terms := preprocessing.PolynomialTerms(2, 3, 2)
//	// [1 2 3 4 6 9]
func PolynomialTerms(x1, x2 float64, degree int) []float64 {
	terms := make([]float64, 0, NPolynomialTerms(degree))
	for n := 0; n <= degree; n++ {
		for k := 0; k <= n; k++ {
			terms = append(terms, math.Pow(x1, float64(n-k))*math.Pow(x2, float64(k)))
		}
	}
	return terms
}

// PolynomialFeatureNames は PolynomialTerms と同じ順序で項の名前を返す
// 例: degree=1 → ["x1^0*x2^0", "x1^1*x2^0", "x1^0*x2^1"]
func PolynomialFeatureNames(degree int) []string {
	names := make([]string, 0, NPolynomialTerms(degree))
	for n := 0; n <= degree; n++ {
		for k := 0; k <= n; k++ {
			names = append(names, fmt.Sprintf("x1^%d*x2^%d", n-k, k))
		}
	}
	return names
}

// PolynomialFeatures は先頭 2 列を多項式基底に展開する変換器
// 3 列目以降は使用しない（2 変数専用の展開）。
type PolynomialFeatures struct {
	model.BaseEstimator

	// Degree は展開の最大次数
	Degree int

	// NInputFeatures は学習時の入力列数
	NInputFeatures int
}

// NewPolynomialFeatures は新しいPolynomialFeaturesを作成する
//
// パラメータ:
//   - degree: 最大次数（0 以上）
//
// 戻り値:
//   - *PolynomialFeatures: 新しいインスタンス
//   - error: degree が負の場合 ValidationError
func NewPolynomialFeatures(degree int) (*PolynomialFeatures, error) {
	if degree < 0 {
		return nil, errors.NewValidationError("degree", "must be non-negative", degree)
	}
	return &PolynomialFeatures{Degree: degree}, nil
}

// Fit は入力列数を検証して記録する
func (p *PolynomialFeatures) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("PolynomialFeatures.Fit", "empty data", errors.ErrEmptyData)
	}
	if c < 2 {
		return errors.NewDimensionError("PolynomialFeatures.Fit", 2, c, 1)
	}

	p.NInputFeatures = c
	p.SetFitted()
	return nil
}

// Transform は各行を (degree+1)(degree+2)/2 列の多項式特徴量に変換する
//
// 戻り値:
//   - mat.Matrix: 変換後のデータ
//   - error: 未学習、列数不一致、または展開結果が有限でない場合
func (p *PolynomialFeatures) Transform(X mat.Matrix) (mat.Matrix, error) {
	if err := p.RequireFitted("PolynomialFeatures", "Transform"); err != nil {
		return nil, err
	}

	r, c := X.Dims()
	if c != p.NInputFeatures {
		return nil, errors.NewDimensionError("PolynomialFeatures.Transform", p.NInputFeatures, c, 1)
	}

	result := mat.NewDense(r, NPolynomialTerms(p.Degree), nil)
	for i := 0; i < r; i++ {
		terms := PolynomialTerms(X.At(i, 0), X.At(i, 1), p.Degree)
		if err := errors.CheckNumericalStability("polynomial_expansion", terms, i); err != nil {
			return nil, err
		}
		result.SetRow(i, terms)
	}

	return result, nil
}

// FitTransform は Fit と Transform を続けて実行する
func (p *PolynomialFeatures) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

// FeatureNames は出力列の名前を返す
func (p *PolynomialFeatures) FeatureNames() []string {
	return PolynomialFeatureNames(p.Degree)
}

// String は変換器の文字列表現を返す
func (p *PolynomialFeatures) String() string {
	return fmt.Sprintf("PolynomialFeatures(degree=%d, n_output_features=%d)", p.Degree, NPolynomialTerms(p.Degree))
}

var _ model.Transformer = (*PolynomialFeatures)(nil)
