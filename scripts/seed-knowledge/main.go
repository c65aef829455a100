// Command seed-knowledge writes the initial knowledge entries into the
// knowledge store. A store that already holds entries is left untouched
// unless -force is given, so a rerun never destroys curated knowledge.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"personal-ai-partner/config"
	"personal-ai-partner/internal/memory/repository"
	memoryFileRepo "personal-ai-partner/internal/memory/repository/file"
	"personal-ai-partner/internal/model"
	"personal-ai-partner/pkg/log"
)

var force = flag.Bool("force", false, "replace existing knowledge entries")

var seedEntries = []model.KnowledgeEntry{
	{Text: `ユーザーの基本情報：
- 主な悩み：腰痛が時々ある
- 生活スタイル：在宅勤務が主
- 好みの色：黒系
- 購入傾向：長く使えるものを重視
- 予算意識：3万円前後が目安`},
	{Text: `健康に関する情報：
- 腰痛あり（月1～2回程度）
- 運動習慣：週2～3回
- 睡眠：6～7時間
- 姿勢：デスク作業が多い`},
	{Text: `過去の購入履歴：
- ゲーミングチェア（1年前、硬め、腰痛悪化）→ 失敗
- メッシュ素材のオフィスチェア（3年前、快適）→ 成功
- 立つデスク用クッション（半年前）→ 効果あり

教訓：硬い素材は避けるべき、メッシュ素材が最適`},
	{Text: `あなたの好みとこだわり：
- 日本ブランドより信頼性
- Amazon レビュー 4.5 以上を重視
- デザインより機能性
- 長期保証があると安心
- サステナビリティに少し関心`},
}

// seed writes entries only when the store is empty; force replaces the
// document regardless.
func seed(ctx context.Context, repo repository.KnowledgeRepository, entries []model.KnowledgeEntry, force bool) (bool, error) {
	existing, err := repo.ListKnowledge(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 && !force {
		return false, nil
	}

	if err := repo.SeedKnowledge(ctx, entries); err != nil {
		return false, err
	}
	return true, nil
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	repo := memoryFileRepo.NewKnowledgeRepository(logger, cfg.Store.KnowledgeFile)

	seeded, err := seed(ctx, repo, seedEntries, *force)
	if err != nil {
		logger.Errorf(ctx, "Failed to seed knowledge: %v", err)
		os.Exit(1)
	}

	if !seeded {
		logger.Infof(ctx, "Knowledge store %s already has entries, skipping (use -force to replace)", cfg.Store.KnowledgeFile)
		return
	}

	logger.Infof(ctx, "Seeded %d knowledge entries into %s", len(seedEntries), cfg.Store.KnowledgeFile)
}
