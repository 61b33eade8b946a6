package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"TabiRoute-App/internal/domain/model"
	"TabiRoute-App/internal/usecase"
)

// RoutePlanHandler はルート提案APIのハンドラー
type RoutePlanHandler struct {
	planUseCase usecase.RoutePlanUseCase
	preferences []model.Preference // 選択中のプロバイダーで有効な好み一覧
}

// NewRoutePlanHandler は新しいRoutePlanHandlerインスタンスを作成
func NewRoutePlanHandler(planUseCase usecase.RoutePlanUseCase, preferences []model.Preference) *RoutePlanHandler {
	return &RoutePlanHandler{
		planUseCase: planUseCase,
		preferences: preferences,
	}
}

// PostRoutePlan は1日ルートを生成するエンドポイント
// POST /api/routes/plan
func (h *RoutePlanHandler) PostRoutePlan(c *gin.Context) {
	var req model.RoutePlanRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if err := h.validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	response, err := h.planUseCase.PlanRoute(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, response)
}

// writeError はエラー種別ごとにユーザー向けのレスポンスを書き出す
// 「都市が見つからない」と「この組み合わせで結果なし」は明確に区別する
func (h *RoutePlanHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrMissingInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "必須の入力が不足しています",
			"details": err.Error(),
		})
	case errors.Is(err, model.ErrCityNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "都市が見つかりませんでした。別の都市名で試してください",
			"details": err.Error(),
		})
	case errors.Is(err, model.ErrNoCandidatesFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "条件に合うスポットが見つかりませんでした。好みを変えて試してください",
			"details": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "ルート提案の生成に失敗しました",
			"details": err.Error(),
		})
	}
}

// validateRequest はリクエストの詳細バリデーションを行う
func (h *RoutePlanHandler) validateRequest(req *model.RoutePlanRequest) error {
	// 都市名は必須
	if strings.TrimSpace(req.City) == "" {
		return &ValidationError{Field: "city", Message: "都市名は必須です"}
	}

	// 好みのチェック
	if req.Preference == "" {
		return &ValidationError{Field: "preference", Message: "好みは必須です"}
	}
	valid := false
	for _, p := range h.preferences {
		if req.Preference == p {
			valid = true
			break
		}
	}
	if !valid {
		return &ValidationError{Field: "preference", Message: "選択できない好みです: " + string(req.Preference)}
	}

	// 旅行日が指定されている場合の形式チェック（表示用のため形式のみ確認）
	if req.HasDate() {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			return &ValidationError{Field: "date", Message: "旅行日はYYYY-MM-DD形式で指定してください"}
		}
	}

	return nil
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
