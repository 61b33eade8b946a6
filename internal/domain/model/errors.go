package model

import "errors"

// パイプラインの終了条件を表すセンチネルエラー
// リトライは行わず、最初の失敗でその実行は終了する
var (
	// ErrMissingInput 必須の入力（都市名、認証情報）が欠けている
	ErrMissingInput = errors.New("必須の入力が不足しています")

	// ErrCityNotFound ジオコーディングで都市が見つからなかった
	ErrCityNotFound = errors.New("都市が見つかりませんでした")

	// ErrNoCandidatesFound 指定カテゴリでスポットが1件も見つからなかった
	ErrNoCandidatesFound = errors.New("条件に合うスポットが見つかりませんでした")

	// ErrInvalidPreference 列挙外の好みがカテゴリマッパーに渡された（設定ミス・プログラムの欠陥）
	ErrInvalidPreference = errors.New("対応していない好みが指定されました")
)
