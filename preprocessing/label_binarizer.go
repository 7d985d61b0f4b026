package preprocessing

import (
	"fmt"
	"sort"

	"github.com/YuminosukeSato/mlprep/core/model"
	"github.com/YuminosukeSato/mlprep/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LabelBinarizer は文字列ラベルを one-hot ベクトルに変換するエンコーダ
// クラスは辞書順に並べられ、i 番目のクラスには単位行列の i 行目が割り当てられる。
// 辞書順なので、例えばラベル "3" が 3 行目になるとは限らない。
type LabelBinarizer struct {
	model.BaseEstimator

	classes []string
	index   map[string]int
	rows    []*mat.VecDense
}

// NewLabelBinarizer は新しいLabelBinarizerを作成する
func NewLabelBinarizer() *LabelBinarizer {
	return &LabelBinarizer{}
}

// Fit はラベル集合からクラス一覧と one-hot 行を構築する
// 重複したラベルは一度だけ数える。再度 Fit すると以前の状態は破棄される。
func (b *LabelBinarizer) Fit(labels []string) error {
	if len(labels) == 0 {
		return errors.NewModelError("LabelBinarizer.Fit", "empty data", errors.ErrEmptyData)
	}

	seen := make(map[string]struct{}, len(labels))
	classes := make([]string, 0)
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		classes = append(classes, l)
	}
	sort.Strings(classes)

	// 単位行列の各行を one-hot ベクトルとして保持する
	k := len(classes)
	ones := make([]float64, k)
	for i := range ones {
		ones[i] = 1
	}
	eye := mat.NewDiagDense(k, ones)

	b.classes = classes
	b.index = make(map[string]int, k)
	b.rows = make([]*mat.VecDense, k)
	for i, c := range classes {
		b.index[c] = i
		b.rows[i] = mat.NewVecDense(k, mat.Row(nil, i, eye))
	}

	b.SetFitted()
	return nil
}

// Transform はラベルに対応する one-hot ベクトルを返す
// 同じラベルには同じ *mat.VecDense が返るため、呼び出し側で変更してはならない。
func (b *LabelBinarizer) Transform(label string) (*mat.VecDense, error) {
	if err := b.RequireFitted("LabelBinarizer", "Transform"); err != nil {
		return nil, err
	}

	i, ok := b.index[label]
	if !ok {
		return nil, errors.NewValueError("LabelBinarizer.Transform", fmt.Sprintf("unknown label %q", label))
	}
	return b.rows[i], nil
}

// InverseTransform はベクトルの最大要素の位置からラベルを復元する
// モデルの予測スコアのような one-hot でないベクトルも argmax で解釈する。
func (b *LabelBinarizer) InverseTransform(v mat.Vector) (string, error) {
	if err := b.RequireFitted("LabelBinarizer", "InverseTransform"); err != nil {
		return "", err
	}

	if v.Len() != len(b.classes) {
		return "", errors.NewDimensionError("LabelBinarizer.InverseTransform", len(b.classes), v.Len(), 1)
	}

	best := 0
	for i := 1; i < v.Len(); i++ {
		if v.AtVec(i) > v.AtVec(best) {
			best = i
		}
	}
	return b.classes[best], nil
}

// Classes は列順のクラス一覧のコピーを返す
func (b *LabelBinarizer) Classes() []string {
	out := make([]string, len(b.classes))
	copy(out, b.classes)
	return out
}

// ClassIndex はラベルの列位置を返す
func (b *LabelBinarizer) ClassIndex(label string) (int, bool) {
	i, ok := b.index[label]
	return i, ok
}

// String はエンコーダの文字列表現を返す
func (b *LabelBinarizer) String() string {
	if !b.IsFitted() {
		return "LabelBinarizer()"
	}
	return fmt.Sprintf("LabelBinarizer(n_classes=%d)", len(b.classes))
}

var _ model.LabelEncoder = (*LabelBinarizer)(nil)
