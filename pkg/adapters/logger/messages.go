package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Found %d images in %s":               "%[2]s に %[1]d 枚の画像が見つかりました",
		"Wrote %d frames (%d ms) to %s":       "%[3]s に %[1]d フレーム (%[2]d ms) を書き出しました",
		"Output saved to %s":                  "出力を %s に保存しました",
		"Summary saved to %s":                 "サマリーを %s に保存しました",
		"Interrupted, finishing the video...": "中断されました。動画を仕上げています...",

		// Scan stage
		"Collected %d images, skipped %d files": "%d 枚の画像を収集し、%d 個のファイルをスキップしました",
		"Skipping %s: not a supported image":    "%s をスキップ: 対応していない画像形式です",

		// Output path stage
		"%s already exists. overwrite it?": "%s は既に存在します。上書きしますか？",
		"Overwriting %s":                   "%s を上書きします",
		"Writing to %s instead":            "代わりに %s に書き出します",

		// Assemble stage
		"Assembling %d images (%s) at %d fps into %s": "%[1]d 枚の画像 (%[2]s) を %[3]d fps で %[4]s に結合中",
		"Wrote frame %d/%d: %s":                       "フレーム書き出し %d/%d: %s",

		// Encoder
		"Starting %s %s":        "%s %s を起動中",
		"Wrote %d frames to %s": "%d フレームを %s に書き出しました",

		// Verification
		"Probed %s: %s %dx%d, %d frames": "%s を検査: %s %dx%d, %d フレーム",

		// Warnings
		"Stopped after %d of %d frames, partial video kept at %s": "%[2]d フレーム中 %[1]d フレームで停止しました。途中までの動画を %[3]s に残しました",
		"Partial video saved to %s":                               "途中までの動画を %s に保存しました",
		"%s holds %d frames, expected %d":                         "%s のフレーム数は %d で、期待値 %d と異なります",
		"Cannot stat %s: %v":                                      "%s の情報を取得できません: %v",
		"Cannot probe %s: %v":                                     "%s を検査できません: %v",

		// Errors
		"Invalid input directory: %v":       "入力ディレクトリが不正です: %v",
		"Failed to collect images: %v":      "画像の収集に失敗しました: %v",
		"Failed to resolve output path: %v": "出力パスの決定に失敗しました: %v",
		"Failed to assemble video: %v":      "動画の結合に失敗しました: %v",
		"Failed to write summary: %v":       "サマリーの書き込みに失敗しました: %v",
	})
}
