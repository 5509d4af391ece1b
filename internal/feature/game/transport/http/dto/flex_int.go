// Package dto はゲーム機能のHTTPトランスポート層で使うDTOを定義します。
package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexInt はJSONの数値と "3" のような数値文字列の両方を受け付けます。
// フォームベースのクライアントは家の数や金額を文字列で送るためです。
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("value %s is not an integer", b)
	}
	*n = FlexInt(v)
	return nil
}

// Int は値を返します。n が nil の場合は def を返します。
func (n *FlexInt) Int(def int) int {
	if n == nil {
		return def
	}
	return int(*n)
}
