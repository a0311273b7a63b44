// Package main provides localization for the timelapse CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Assemble still images into an MP4 timelapse video.": "静止画を結合してMP4のタイムラプス動画を作成します。",

		// Build command
		"--dir is required":    "--dir の指定が必要です",
		"--output is required": "--output の指定が必要です",
		"Encoding":             "エンコード中",

		// Probe command
		"Codec: %s":                         "コーデック: %s",
		"Frame size: %dx%d":                 "フレームサイズ: %dx%d",
		"Frames: %d":                        "フレーム数: %d",
		"Frames: unknown (fragmented file)": "フレーム数: 不明（フラグメント化されたファイル）",
		"Duration: %d ms (%.2f fps)":        "再生時間: %d ms (%.2f fps)",

		// Version command
		"timelapse version %s": "timelapse バージョン %s",

		// Summary content
		"Timelapse Summary": "タイムラプスのサマリー",
		"Failed":            "失敗",
		"Partial":           "途中まで",
		"Input":             "入力",
		"Settings":          "設定",
		"Video":             "動画",
		"Container":         "コンテナ",
		"Item":              "項目",
		"Value":             "値",
		"Generated at":      "生成日時",
		"yes":               "はい",

		// Input section
		"Directory":     "ディレクトリ",
		"Images":        "画像数",
		"Skipped Files": "スキップしたファイル",

		// Settings section
		"Frame Rate": "フレームレート",
		"Codec":      "コーデック",
		"Quality":    "品質",
		"Sort Order": "並び順",

		// Video section
		"Output":      "出力先",
		"Frame Size":  "フレームサイズ",
		"Frames":      "フレーム数",
		"hold":        "保持",
		"Duration":    "再生時間",
		"File Size":   "ファイルサイズ",
		"Overwritten": "上書き",
	})
}
